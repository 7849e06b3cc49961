package i18n

type Localizer interface {
	T(key string, args ...interface{}) string
}
