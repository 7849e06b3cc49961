package metrics

import (
	"time"

	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/msg"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(commandsTotal, commandLatency) }

var (
	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Handled bot commands by command and result.",
		},
		[]string{"command", "result"},
	)

	commandLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bot_command_duration_seconds",
			Help:    "Command handling duration.",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"command"},
	)
)

type CommandObserver struct{}

func (CommandObserver) ObserveCommand(cmd msg.Command, err error, dur time.Duration) {
	res := result(err)
	if err != nil {
		res = errs.KindOf(err).String()
	}

	commandsTotal.WithLabelValues(norm(cmd.String()), res).Inc()
	commandLatency.WithLabelValues(norm(cmd.String())).Observe(dur.Seconds())
}
