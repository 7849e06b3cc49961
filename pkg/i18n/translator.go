package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultLang = "ar"

//go:embed locales
var LocalesFS embed.FS

type Translator struct {
	lang         string
	translations map[string]string
	fallback     map[string]string
}

func Build() (*Translator, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	e := cfg.Validate()
	if e.HasErrors() {
		return nil, e
	}

	return NewTranslator(LocalesFS, cfg.Lang)
}

// NewTranslator reads locales/<lang>.yaml, keys missing there are taken from the default language.
func NewTranslator(fsys fs.FS, lang string) (*Translator, error) {
	translations, err := readLocale(fsys, lang)
	if err != nil {
		return nil, err
	}

	t := &Translator{lang: lang, translations: translations}

	if lang != DefaultLang {
		t.fallback, err = readLocale(fsys, DefaultLang)
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

func readLocale(fsys fs.FS, lang string) (map[string]string, error) {
	filePath := path.Join("locales", fmt.Sprintf("%s.yaml", lang))

	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read translation file %s", filePath)
	}

	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, errors.Wrapf(err, "failed to parse translation file %s", filePath)
	}

	return translations, nil
}

func (t *Translator) Lang() string {
	return t.lang
}

// T returns the key itself when no translation exists.
func (t *Translator) T(key string, args ...interface{}) string {
	format, ok := t.translations[key]
	if !ok {
		format, ok = t.fallback[key]
	}
	if !ok {
		return key
	}

	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}

	return format
}
