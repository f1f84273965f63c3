package claim

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mrsinham/claimforge/internal/claim/catalog"
	"github.com/mrsinham/claimforge/internal/claim/edgecases"
	"github.com/mrsinham/claimforge/internal/claim/fields"
)

// GeneratorOptions contains all parameters needed to generate a claim batch
type GeneratorOptions struct {
	Count     int
	OutputDir string
	Seed      int64
	Workers   int // Number of parallel workers (0 = auto-detect based on CPU cores)

	// Coverage phase: how much of the field catalog each form populates
	Phase fields.Phase

	// Content generation profile
	Config Config

	// Edge case generation
	EdgeCaseConfig edgecases.Config

	// Output control
	Quiet            bool                     // Suppress progress output
	ProgressCallback func(current, total int) // Optional callback for progress updates
}

// GeneratedForm is one completed claim with its bound field mapping.
type GeneratedForm struct {
	Index    int
	RecordID string
	Claim    Claim
	Mapping  FieldMapping
	Summary  Summary
}

// claimTask carries everything a worker needs to produce one form. Tasks
// are built sequentially; each carries its own sub-seed so workers never
// share rng state.
type claimTask struct {
	index    int
	subSeed  uint64
	recordID string
}

// Generate produces a batch of claims. A fixed seed and config yield an
// identical batch regardless of worker count: each claim derives its own
// rng from a per-index sub-seed.
func Generate(opts GeneratorOptions) ([]GeneratedForm, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("number of claims must be > 0, got %d", opts.Count)
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}
	if err := opts.EdgeCaseConfig.Validate(); err != nil {
		return nil, err
	}
	// Static table checks run once per batch so a drift between the field
	// catalog, feature sets and code tables fails before any claim exists.
	if err := fields.ValidateFieldSets(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	// Set seed for reproducibility
	var seed int64
	if opts.Seed != 0 {
		seed = opts.Seed
		if !opts.Quiet {
			fmt.Printf("Using seed: %d\n", seed)
		}
	} else {
		// Generate deterministic seed from output directory name
		h := fnv.New64a()
		_, _ = h.Write([]byte(opts.OutputDir)) // hash.Write never returns an error
		seed = int64(h.Sum64())
		if !opts.Quiet {
			fmt.Printf("Auto-generated seed from '%s': %d\n", opts.OutputDir, seed)
			fmt.Println("  (same directory = same claim identities)")
		}
	}

	// Phase 1: Build all tasks sequentially (maintains determinism)
	tasks := make([]claimTask, opts.Count)
	for i := 0; i < opts.Count; i++ {
		subSeedHash := fnv.New64a()
		_, _ = fmt.Fprintf(subSeedHash, "%d_claim_%d", seed, i+1)

		recordUUID := uuid.NewSHA1(uuid.NameSpaceOID,
			[]byte(fmt.Sprintf("%d_claim_%d", seed, i+1)))

		tasks[i] = claimTask{
			index:    i + 1,
			subSeed:  subSeedHash.Sum64(),
			recordID: recordUUID.String(),
		}
	}

	// Phase 2: Process tasks in parallel
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	if !opts.Quiet {
		fmt.Printf("Generating %d claims with %d parallel workers...\n", opts.Count, numWorkers)
	}

	taskChan := make(chan claimTask, len(tasks))
	resultChan := make(chan struct {
		form GeneratedForm
		err  error
	}, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				form, err := generateFromTask(task, opts)
				resultChan <- struct {
					form GeneratedForm
					err  error
				}{form, err}
			}
		}()
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results and track progress
	forms := make([]GeneratedForm, opts.Count)
	completed := 0
	var firstErr error
	for result := range resultChan {
		if result.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("generate claim %d: %w", result.form.Index, result.err)
		}
		if result.err == nil {
			forms[result.form.Index-1] = result.form
		}
		completed++
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks))
		}
		if !opts.Quiet && (completed%10 == 0 || completed == len(tasks)) {
			progress := float64(completed) / float64(len(tasks)) * 100
			fmt.Printf("  Progress: %d/%d (%.0f%%)\n", completed, len(tasks), progress)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	if !opts.Quiet {
		fmt.Printf("\n✓ %d claims generated\n", opts.Count)
	}

	return forms, nil
}

// generateFromTask produces a single claim from a pre-computed task.
func generateFromTask(task claimTask, opts GeneratorOptions) (GeneratedForm, error) {
	rng := rand.New(rand.NewPCG(task.subSeed, task.subSeed))

	c := Build(opts.Config, rng)

	if opts.EdgeCaseConfig.IsEnabled() {
		applicator := edgecases.NewApplicator(opts.EdgeCaseConfig, rng)
		if applicator.ShouldApply() {
			applyEdgeCases(&c, applicator)
		}
	}

	mapping, summary, err := Bind(c, opts.Phase)
	if err != nil {
		return GeneratedForm{Index: task.index}, err
	}

	return GeneratedForm{
		Index:    task.index,
		RecordID: task.recordID,
		Claim:    c,
		Mapping:  mapping,
		Summary:  summary,
	}, nil
}

// applyEdgeCases rewrites claim identities in place with edge variants.
func applyEdgeCases(c *Claim, a *edgecases.Applicator) {
	patientWasInsured := c.Scenario.PatientIsInsured

	name := a.ApplyToName(c.Parties.Patient.Sex, c.Parties.Patient.Name())
	c.Parties.Patient.First, c.Parties.Patient.Last = splitName(name)
	c.Parties.Patient.Birth = a.ApplyToBirthDate(c.Parties.Patient.Birth)
	c.Parties.PolicyID = a.ApplyToPolicyID(c.Parties.PolicyID)

	if patientWasInsured {
		c.Parties.Insured = c.Parties.Patient
	}
}

func splitName(name string) (first, last string) {
	if i := strings.Index(name, " "); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}
