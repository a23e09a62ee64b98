// Package locale provides string lookup for panel labels.
//
// Keys are the English strings themselves, so English is an identity
// passthrough and any key without a translation falls back to itself.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Default is the language used when none is configured.
const Default = "en"

var spanish = map[string]string{
	"Start":                               "Comenzar",
	"Resume":                              "Reanudar",
	"Skip onboarding":                     "Omitir la introducción",
	"Explore more features":               "Explorar más funciones",
	"Hide some features":                  "Ocultar algunas funciones",
	"Hello":                               "Hola",
	"Which feature do you want to set up": "¿Qué función quieres configurar?",
	"Back":                                "Volver",
	"Close":                               "Cerrar",
	"Completed":                           "Completado",
	"Welcome":                             "Bienvenido",
	"Let's get your workspace set up":     "Preparemos tu espacio de trabajo",
	"Keyboard shortcuts":                  "Atajos de teclado",
	"features complete":                   "funciones completadas",
	"Onboarding complete":                 "Introducción completada",
	"Press o to open onboarding":          "Pulsa o para abrir la introducción",
	"Feature catalog reloaded":            "Catálogo de funciones recargado",
}

var builder = newBuilder()

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range spanish {
		_ = b.SetString(language.Spanish, key, msg)
	}
	return b
}

// Supported returns the languages with a catalog.
func Supported() []language.Tag {
	return []language.Tag{language.English, language.Spanish}
}

// IsSupported reports whether lang matches a supported language.
func IsSupported(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	_, _, conf := language.NewMatcher(Supported()).Match(tag)
	return conf != language.No
}

// Translator looks up strings for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for lang. Unparseable or unsupported languages
// fall back to English.
func New(lang string) *Translator {
	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		matched, _, conf := language.NewMatcher(Supported()).Match(parsed)
		if conf != language.No {
			base, _ := matched.Base()
			tag = language.Make(base.String())
		}
	}
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// Identity returns the English passthrough translator.
func Identity() *Translator {
	return New(Default)
}

// Language returns the BCP 47 tag in use.
func (t *Translator) Language() string {
	return t.tag.String()
}

// T returns the translation of key.
func (t *Translator) T(key string) string {
	if t == nil || key == "" || strings.Contains(key, "%") {
		return key
	}
	return t.printer.Sprintf(key)
}
