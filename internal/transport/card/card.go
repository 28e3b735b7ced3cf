// Package card serves the agent's capability descriptor at the
// well-known discovery path peers resolve before calling.
package card

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/currency-mesh/internal/protocol"
)

const WellKnownPath = "/.well-known/agent.json"

type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

type Card struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Version            string            `json:"version"`
	URL                string            `json:"url"`
	Methods            []protocol.Method `json:"methods"`
	Skills             []Skill           `json:"skills"`
	DefaultInputModes  []string          `json:"default_input_modes"`
	DefaultOutputModes []string          `json:"default_output_modes"`
}

func Register(r *gin.Engine, c Card) {
	r.GET(WellKnownPath, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, c)
	})
}

// Currency is the currency agent's descriptor.
func Currency(url string) Card {
	return Card{
		Name:        "currency-agent",
		Description: "Converts currencies using live exchange rates and delegates report generation to the reporting agent.",
		Version:     "1.0.0",
		URL:         url,
		Methods:     []protocol.Method{protocol.MethodSendWithReport, protocol.MethodStream},
		Skills: []Skill{{
			ID:          "convert_currency",
			Name:        "Currency conversion",
			Description: "Answers exchange-rate questions with a conversion and a prose report.",
			Examples:    []string{"How much is 100 USD in EUR today?"},
		}},
		DefaultInputModes:  []string{"text", "text/plain"},
		DefaultOutputModes: []string{"text", "text/plain"},
	}
}

// Reporting is the reporting agent's descriptor.
func Reporting(url string) Card {
	return Card{
		Name:        "reporting-agent",
		Description: "Generates human-readable reports for currency conversion results.",
		Version:     "1.0.0",
		URL:         url,
		Methods:     []protocol.Method{protocol.MethodSend, protocol.MethodStream},
		Skills: []Skill{{
			ID:          "generate_report",
			Name:        "Conversion report",
			Description: "Turns a conversion result into prose.",
		}},
		DefaultInputModes:  []string{"text", "text/plain", "application/json"},
		DefaultOutputModes: []string{"text", "text/plain"},
	}
}
