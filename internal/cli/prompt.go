package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/export"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/tui"
)

// ErrNotInteractive is returned when a prompt is needed but stdout is not a
// terminal.
var ErrNotInteractive = errors.New("interactive prompt requires a terminal")

// stageAnswers receives the custom-stage prompt.
type stageAnswers struct {
	Stage          string `survey:"stage"`
	Emissions      string `survey:"emissions"`
	Recommendation string `survey:"recommendation"`
}

// validateQuantity accepts the quantities ParseQuantity understands.
func validateQuantity(ans interface{}) error {
	s, _ := ans.(string)
	if _, err := greenops.ParseQuantity(s); err != nil {
		return fmt.Errorf("enter a non-negative amount such as 1200, 1.5t or 800kg: %w", err)
	}
	return nil
}

// PromptStage asks for a custom emission stage.
func PromptStage() (emissions.Record, error) {
	if !tui.IsTTY() {
		return emissions.Record{}, ErrNotInteractive
	}

	questions := []*survey.Question{
		{
			Name:     "stage",
			Prompt:   &survey.Input{Message: "Stage name:"},
			Validate: survey.Required,
		},
		{
			Name: "emissions",
			Prompt: &survey.Input{
				Message: "Emissions:",
				Help:    "kg CO₂ by default; g, t and lb suffixes are converted",
			},
			Validate: survey.ComposeValidators(survey.Required, validateQuantity),
		},
		{
			Name:   "recommendation",
			Prompt: &survey.Input{Message: "Recommendation (optional):"},
		},
	}

	var answers stageAnswers
	if err := survey.Ask(questions, &answers); err != nil {
		return emissions.Record{}, err
	}
	return parseStageAnswers(answers)
}

func parseStageAnswers(a stageAnswers) (emissions.Record, error) {
	kg, err := greenops.ParseQuantity(a.Emissions)
	if err != nil {
		return emissions.Record{}, err
	}
	return emissions.NewRecord(a.Stage, kg, a.Recommendation)
}

// ParseStageSpec parses the non-interactive form "Stage=Amount[=Recommendation]".
func ParseStageSpec(spec string) (emissions.Record, error) {
	parts := strings.SplitN(spec, "=", 3) //nolint:mnd // Stage, amount, recommendation.
	if len(parts) < 2 {                   //nolint:mnd // Stage and amount are required.
		return emissions.Record{}, fmt.Errorf("invalid stage %q: use Stage=Amount[=Recommendation]", spec)
	}
	a := stageAnswers{Stage: parts[0], Emissions: parts[1]}
	if len(parts) == 3 { //nolint:mnd // Recommendation present.
		a.Recommendation = parts[2]
	}
	rec, err := parseStageAnswers(a)
	if err != nil {
		return emissions.Record{}, fmt.Errorf("invalid stage %q: %w", spec, err)
	}
	return rec, nil
}

// SelectReportType asks which report to generate.
func SelectReportType() (export.ReportType, error) {
	if !tui.IsTTY() {
		return "", ErrNotInteractive
	}

	infos := export.ReportTypes()
	options := make([]string, 0, len(infos))
	byOption := make(map[string]export.ReportType, len(infos))
	for _, info := range infos {
		opt := fmt.Sprintf("%s - %s", info.Label, info.Description)
		options = append(options, opt)
		byOption[opt] = info.Type
	}

	var selected string
	prompt := &survey.Select{
		Message: "Which report would you like to generate?",
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return byOption[selected], nil
}

// Confirm asks for user confirmation. It declines without a terminal.
func Confirm(message string) bool {
	if !tui.IsTTY() {
		return false
	}
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = survey.AskOne(prompt, &confirmed)
	return confirmed
}
