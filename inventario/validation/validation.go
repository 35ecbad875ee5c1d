// Package validation implements the declarative, table-driven validation
// engine. Rules are data keyed by field name, so new entity types are
// validated by adding table entries rather than new functions. Uniqueness
// checks against stored collections live with the store, not here: they need
// a lookup and only run after static validation has passed.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field names covered by the default rule table. Entity validators reference
// these constants instead of repeating string literals.
const (
	CampoNombre      = "nombre"
	CampoEmail       = "email"
	CampoPrecio      = "precio"
	CampoStock       = "stock"
	CampoStockMinimo = "stockMinimo"
	CampoTelefono    = "telefono"
	CampoDescripcion = "descripcion"

	// Cross-field password confirmation pair.
	CampoClave          = "clave"
	CampoConfirmarClave = "confirmarClave"
)

// Rule declares the constraints for one field. A zero MinLength/MaxLength or
// nil Min/Max/Pattern disables that check. Message is the text surfaced when
// the pattern check fails.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Min       *float64
	Max       *float64
	Pattern   *regexp.Regexp
	Message   string
}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	IsValid bool
	Message string
}

// Result is the outcome of validating a full field map. Errors maps field
// name to the first failing rule's message for that field.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// Engine validates untyped field maps against a rule table.
type Engine struct {
	rules map[string]Rule
}

var (
	patternNombre   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ0-9\s\-\.]+$`)
	patternEmail    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	patternTelefono = regexp.MustCompile(`^[\+]?[0-9\s\-\(\)]{7,15}$`)
)

// NewEngine returns an engine loaded with the default rule table.
func NewEngine() *Engine {
	return &Engine{rules: map[string]Rule{
		CampoNombre: {
			Required:  true,
			MinLength: 2,
			MaxLength: 100,
			Pattern:   patternNombre,
			Message:   "El nombre debe tener entre 2 y 100 caracteres y solo puede contener letras, números, espacios, guiones y puntos",
		},
		CampoEmail: {
			Required: true,
			Pattern:  patternEmail,
			Message:  "Por favor ingrese un email válido",
		},
		CampoPrecio: {
			Required: true,
			Min:      floatPtr(0),
			Max:      floatPtr(1000000),
			Message:  "El precio debe ser un número entre 0 y 1,000,000",
		},
		CampoStock: {
			Required: true,
			Min:      floatPtr(0),
			Max:      floatPtr(100000),
			Message:  "El stock debe ser un número entre 0 y 100,000",
		},
		CampoStockMinimo: {
			Required: true,
			Min:      floatPtr(0),
			Max:      floatPtr(10000),
			Message:  "El stock mínimo debe ser un número entre 0 y 10,000",
		},
		CampoTelefono: {
			Pattern: patternTelefono,
			Message: "Por favor ingrese un número de teléfono válido",
		},
		CampoDescripcion: {
			MaxLength: 500,
			Message:   "La descripción no puede exceder los 500 caracteres",
		},
	}}
}

// WithRule adds or replaces the rule for a field and returns the engine for
// chaining.
func (e *Engine) WithRule(name string, rule Rule) *Engine {
	e.rules[name] = rule
	return e
}

// ValidateField checks one value against the rule for name. Fields without a
// rule are always valid. Checks run in a fixed order (required, length,
// numeric bounds, pattern) and the first failure's message is the one
// surfaced.
func (e *Engine) ValidateField(name, value string) FieldResult {
	rule, ok := e.rules[name]
	if !ok {
		return FieldResult{IsValid: true}
	}

	trimmed := strings.TrimSpace(value)
	if rule.Required && trimmed == "" {
		return FieldResult{Message: "Este campo es requerido"}
	}
	if !rule.Required && trimmed == "" {
		return FieldResult{IsValid: true}
	}

	length := len([]rune(value))
	if rule.MinLength > 0 && length < rule.MinLength {
		return FieldResult{Message: fmt.Sprintf("Mínimo %d caracteres requeridos", rule.MinLength)}
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return FieldResult{Message: fmt.Sprintf("Máximo %d caracteres permitidos", rule.MaxLength)}
	}

	if rule.Min != nil || rule.Max != nil {
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return FieldResult{Message: rule.Message}
		}
		if rule.Min != nil && parsed < *rule.Min {
			return FieldResult{Message: fmt.Sprintf("El valor mínimo permitido es %s", formatBound(*rule.Min))}
		}
		if rule.Max != nil && parsed > *rule.Max {
			return FieldResult{Message: fmt.Sprintf("El valor máximo permitido es %s", formatBound(*rule.Max))}
		}
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return FieldResult{Message: rule.Message}
	}

	return FieldResult{IsValid: true}
}

// ValidateForm validates every field present in the map (fields absent from
// the input are never checked), collecting all per-field errors, then runs
// the cross-field checks. Each cross check runs independently: one failing
// does not stop the others.
func (e *Engine) ValidateForm(fields map[string]string) Result {
	result := Result{IsValid: true, Errors: map[string]string{}}

	for name, value := range fields {
		if fr := e.ValidateField(name, value); !fr.IsValid {
			result.Errors[name] = fr.Message
			result.IsValid = false
		}
	}

	// Stock actual frente a stock mínimo, comparados como enteros.
	if stockStr, ok := fields[CampoStock]; ok {
		if minStr, ok := fields[CampoStockMinimo]; ok {
			stock, err1 := strconv.Atoi(strings.TrimSpace(stockStr))
			minimo, err2 := strconv.Atoi(strings.TrimSpace(minStr))
			if err1 == nil && err2 == nil && stock < minimo {
				result.Errors[CampoStock] = "El stock actual no puede ser menor al stock mínimo"
				result.IsValid = false
			}
		}
	}

	// Confirmación de contraseña, solo cuando ambos campos vienen informados.
	if clave := fields[CampoClave]; clave != "" {
		if confirmar := fields[CampoConfirmarClave]; confirmar != "" && clave != confirmar {
			result.Errors[CampoConfirmarClave] = "Las contraseñas no coinciden"
			result.IsValid = false
		}
	}

	return result
}

// SingleError builds a wholesale-replacement result carrying one field error.
// Entity validators use it for uniqueness failures.
func SingleError(field, message string) Result {
	return Result{Errors: map[string]string{field: message}}
}

func floatPtr(v float64) *float64 { return &v }

// formatBound renders a bound without a trailing ".0" for whole numbers.
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
