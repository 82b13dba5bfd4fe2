package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

var ErrInvalidRole = errors.New("invalid role")

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// Turn is one message in the transcript. Turns are values and are never
// mutated after they are appended.
type Turn struct {
	Role Role
	Text string
}

// NewTurn validates the role at the boundary so rendering never has to
// guess at a malformed turn.
func NewTurn(role Role, text string) (Turn, error) {
	if !role.Valid() {
		return Turn{}, fmt.Errorf("%w: %q", ErrInvalidRole, string(role))
	}
	return Turn{Role: role, Text: text}, nil
}

func UserTurn(text string) Turn  { return Turn{Role: RoleUser, Text: text} }
func ModelTurn(text string) Turn { return Turn{Role: RoleModel, Text: text} }

const (
	DefaultModelID           = "gemini-2.0-flash-exp"
	DefaultTemperature       = 1.0
	DefaultSystemInstruction = "you are a helpful assistant"

	MinTemperature = 0.0
	MaxTemperature = 2.0
)

// Settings is the configuration applied to the next outbound request.
type Settings struct {
	Temperature       float64
	Model             string
	SystemInstruction string
}

func DefaultSettings() Settings {
	return Settings{
		Temperature:       DefaultTemperature,
		Model:             DefaultModelID,
		SystemInstruction: DefaultSystemInstruction,
	}
}

// ChatRequest is the payload of one outbound call. History already ends
// with the user turn carrying UserMessage.
type ChatRequest struct {
	UserMessage string
	History     []Turn
	Settings    Settings
}

type AIModel struct {
	ID          string
	Name        string
	Provider    string
	Description string
}

var AvailableModels = []AIModel{
	{ID: "gemini-2.0-flash-exp", Name: "Gemini 2.0 Flash (exp)", Provider: "Google", Description: "Fast multimodal model"},
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", Provider: "Google", Description: "Stable flash model"},
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", Provider: "Google", Description: "Thinking flash model"},
	{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", Provider: "Google", Description: "Most capable Gemini model"},
}

// FindModelByID returns the catalog entry and its index.
func FindModelByID(id string) (AIModel, int, bool) {
	for i, mdl := range AvailableModels {
		if mdl.ID == id {
			return mdl, i, true
		}
	}
	return AIModel{}, -1, false
}

// Theme is the persisted color scheme name.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
