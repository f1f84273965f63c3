package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/claimforge/cmd/claimforge/wizard/screens"
	"github.com/mrsinham/claimforge/internal/claim"
	"github.com/mrsinham/claimforge/internal/claim/edgecases"
	"github.com/mrsinham/claimforge/internal/claim/emit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Width(16)

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)

// Run launches the interactive wizard. When fromConfig is non-empty, the
// wizard starts pre-filled from that YAML file.
func Run(fromConfig string) error {
	state := NewState()
	if fromConfig != "" {
		loaded, err := LoadFromYAML(fromConfig)
		if err != nil {
			return err
		}
		state = loaded
	}

	fmt.Println(titleStyle.Render("claimforge wizard"))
	fmt.Println()

	confirmed, err := collect(state)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	printSummary(state)

	opts, err := ToGeneratorOptions(state)
	if err != nil {
		return err
	}
	opts.Quiet = true

	forms, err := runWithProgress(opts)
	if err != nil {
		return err
	}
	if forms == nil {
		// Cancelled from the progress screen.
		return nil
	}

	if err := emitFormats(state, opts, forms); err != nil {
		return err
	}

	return offerSaveConfig(state)
}

// collect runs the huh form and fills the state. Returns false when the
// user declined the final confirmation.
func collect(state *WizardState) (bool, error) {
	count := strconv.Itoa(state.Batch.Count)
	seed := strconv.FormatInt(state.Batch.Seed, 10)
	workers := strconv.Itoa(state.Batch.Workers)
	edgePct := strconv.Itoa(state.Batch.EdgeCasePercentage)
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number of claims").
				Value(&count).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Output directory").
				Value(&state.Batch.OutputDir).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Seed (0 = derive from output directory)").
				Value(&seed).
				Validate(validateInt),
			huh.NewInput().
				Title("Workers (0 = CPU cores)").
				Value(&workers).
				Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Coverage phase").
				Options(
					huh.NewOption("core - identity, diagnoses, services, totals", "core"),
					huh.NewOption("clinical - adds timeline, referrals, facilities", "clinical"),
					huh.NewOption("specialized - adds local use, EPSDT, supplemental", "specialized"),
				).
				Value(&state.Batch.Phase),
			huh.NewMultiSelect[string]().
				Title("Output formats").
				Options(
					huh.NewOption("JSON records", "json").Selected(true),
					huh.NewOption("Parquet dataset", "parquet"),
					huh.NewOption("Filled PDF templates", "pdf"),
				).
				Value(&state.Batch.Formats),
			huh.NewInput().
				Title("Template PDF (only used for the pdf format)").
				Value(&state.Batch.Template),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Edge case percentage (0-100)").
				Value(&edgePct).
				Validate(validatePercentage),
			huh.NewMultiSelect[string]().
				Title("Edge case types").
				Options(
					huh.NewOption("special characters in names", string(edgecases.SpecialChars)),
					huh.NewOption("maximum-length names and IDs", string(edgecases.LongNames)),
					huh.NewOption("very old birth dates", string(edgecases.OldDates)),
					huh.NewOption("varied member ID formats", string(edgecases.VariedIDs)),
				).
				Value(&state.Batch.EdgeCaseTypes),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	state.Batch.Count, _ = strconv.Atoi(count)
	state.Batch.Seed, _ = strconv.ParseInt(seed, 10, 64)
	state.Batch.Workers, _ = strconv.Atoi(workers)
	state.Batch.EdgeCasePercentage, _ = strconv.Atoi(edgePct)

	return confirmed, nil
}

// generateInBackground starts generation on its own goroutine, forwarding
// progress and completion through send. The returned wait blocks until the
// goroutine has exited, so results are never read while still being written.
func generateInBackground(opts claim.GeneratorOptions, send func(tea.Msg)) func() ([]claim.GeneratedForm, error) {
	var forms []claim.GeneratedForm
	var genErr error
	done := make(chan struct{})
	start := time.Now()

	opts.ProgressCallback = func(current, total int) {
		send(screens.ProgressMsg{Current: current, Total: total})
	}

	go func() {
		defer close(done)
		forms, genErr = claim.Generate(opts)
		if genErr != nil {
			send(screens.ErrorMsg{Error: genErr})
			return
		}
		send(screens.CompletionMsg{
			TotalForms: len(forms),
			Duration:   time.Since(start),
			OutputDir:  opts.OutputDir,
		})
	}()

	return func() ([]claim.GeneratedForm, error) {
		<-done
		return forms, genErr
	}
}

// runWithProgress drives generation behind a bubbletea progress screen.
// Returns nil forms when the user cancelled.
func runWithProgress(opts claim.GeneratorOptions) ([]claim.GeneratedForm, error) {
	screen := screens.NewProgressScreen(opts.Count)
	program := tea.NewProgram(screen)

	wait := generateInBackground(opts, func(msg tea.Msg) { program.Send(msg) })

	_, runErr := program.Run()
	// The program can return first when the user cancels; wait for the
	// generator before reading its results.
	forms, genErr := wait()
	if runErr != nil {
		return nil, runErr
	}
	if genErr != nil {
		return nil, genErr
	}
	if screen.Cancelled() {
		return nil, nil
	}
	return forms, nil
}

// emitFormats writes the selected output formats for a finished batch.
func emitFormats(state *WizardState, opts claim.GeneratorOptions, forms []claim.GeneratedForm) error {
	generatedAt := opts.Config.ReferenceDate.Format(time.RFC3339)
	withPDF := hasFormat(state.Batch.Formats, "pdf") && state.Batch.Template != ""

	if err := emit.WriteRecords(opts.OutputDir, forms, opts.Phase.String(), generatedAt, withPDF); err != nil {
		return err
	}
	if hasFormat(state.Batch.Formats, "parquet") {
		path := opts.OutputDir + "/" + emit.DatasetFilename
		if err := emit.WriteDataset(path, forms); err != nil {
			return err
		}
	}
	if withPDF {
		for _, form := range forms {
			if err := emit.FillTemplate(state.Batch.Template, opts.OutputDir, form); err != nil {
				return err
			}
		}
	}
	return nil
}

// offerSaveConfig asks whether to persist the wizard state for reuse.
func offerSaveConfig(state *WizardState) error {
	save := false
	path := "claimforge.yaml"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration for reuse?").
				Value(&save),
			huh.NewInput().
				Title("Config path").
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if !save {
		return nil
	}
	if err := SaveToYAML(state, path); err != nil {
		return err
	}
	fmt.Printf("Configuration saved to %s\n", path)
	return nil
}

func printSummary(state *WizardState) {
	row := func(label, value string) {
		fmt.Println(summaryLabelStyle.Render(label) + summaryValueStyle.Render(value))
	}
	fmt.Println()
	row("Claims:", strconv.Itoa(state.Batch.Count))
	row("Output:", state.Batch.OutputDir)
	row("Phase:", state.Batch.Phase)
	row("Formats:", strings.Join(state.Batch.Formats, ", "))
	if state.Batch.EdgeCasePercentage > 0 {
		row("Edge cases:", fmt.Sprintf("%d%% (%s)",
			state.Batch.EdgeCasePercentage, strings.Join(state.Batch.EdgeCaseTypes, ", ")))
	}
	fmt.Println()
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validatePercentage(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("must be 0-100")
	}
	return nil
}
