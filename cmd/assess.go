package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kriju0726/HealiFy/internal/application"
	"github.com/kriju0726/HealiFy/internal/domain"
	"github.com/spf13/cobra"
)

const destinationAssess application.Destination = "assess"

func newAssessCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run a health risk self-assessment",
	}

	cmd.AddCommand(newAssessListCmd(), newAssessRunCmd(app))

	return cmd
}

func newAssessListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported assessment types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, typ := range domain.AssessmentTypes() {
				_, _ = fmt.Fprintf(out, "%-14s %s\n", typ, typ.Label())
			}
			return nil
		},
	}
}

func newAssessRunCmd(app *app) *cobra.Command {
	var answerFlags []string

	cmd := &cobra.Command{
		Use:   "run <type>",
		Short: "Answer a questionnaire and fetch the risk score",
		Long:  "Run an assessment of the given type. Without --answer flags the questionnaire is printed; each answer rates a symptom from 0 (absent) to 100 (severe).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAccess(cmd, app, destinationAssess); err != nil {
				return err
			}

			typ := domain.AssessmentType(args[0])

			questions, err := app.workflow.Start(typ)
			if err != nil {
				return startHint(typ, err)
			}

			if len(answerFlags) == 0 {
				printQuestionnaire(cmd, typ, questions)
				return nil
			}

			for _, raw := range answerFlags {
				key, value, err := parseAnswer(raw)
				if err != nil {
					return err
				}
				if err := app.workflow.SetAnswer(key, value); err != nil {
					return fmt.Errorf("answer %q: %w", key, err)
				}
			}

			if err := runSubmitSpinner(cmd.Context(), cmd.OutOrStdout(), app.workflow.Submit); err != nil {
				return err
			}

			result, ok := app.workflow.Result()
			if !ok {
				notices := app.workflow.DrainNotices()
				return fmt.Errorf("assessment did not finish: %s", strings.Join(notices, "; "))
			}

			rendered, err := app.resultRenderer(
				application.ResultReport{Type: typ, Result: result},
				renderOptions(app),
			)
			if err != nil {
				return fmt.Errorf("render result: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&answerFlags, "answer", nil, "Answer as key=value, repeatable (value 0-100)")

	return cmd
}

func startHint(typ domain.AssessmentType, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownAssessmentType):
		return fmt.Errorf("unknown assessment type %q, run 'healify assess list': %w", typ, err)
	case errors.Is(err, domain.ErrProfileIncomplete):
		return fmt.Errorf("complete your profile first with 'healify profile set': %w", err)
	default:
		return err
	}
}

func printQuestionnaire(cmd *cobra.Command, typ domain.AssessmentType, questions []domain.Question) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s questionnaire, rate each symptom from 0 to 100:\n\n", typ.Label())
	for _, q := range questions {
		_, _ = fmt.Fprintf(out, "  %-22s %s\n", q.Key, q.Label)
	}
	_, _ = fmt.Fprintf(out, "\nExample: healify assess run %s --answer %s=40\n", typ, questions[0].Key)
}

func parseAnswer(raw string) (string, int, error) {
	key, rawValue, found := strings.Cut(raw, "=")
	if !found || key == "" {
		return "", 0, fmt.Errorf("answer %q is not in key=value form", raw)
	}

	value, err := strconv.Atoi(rawValue)
	if err != nil {
		return "", 0, fmt.Errorf("answer %q has a non-numeric value: %w", raw, err)
	}

	return key, value, nil
}
