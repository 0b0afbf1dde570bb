package sampler

import (
	"fmt"
	"io"
	"math/rand/v2"

	"code.cloudfoundry.org/bytefmt"

	"subsample/logger"
)

// Phase is a step of a sampling run. Runs only move forward.
type Phase int

const (
	PhaseCounting Phase = iota
	PhaseSampling
	PhaseEmitting
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseCounting:
		return "counting"
	case PhaseSampling:
		return "sampling"
	case PhaseEmitting:
		return "emitting"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Config describes a single sampling run
type Config struct {
	InputPath  string
	SampleSize int
}

// Result summarizes a finished run
type Result struct {
	Records int
	Bytes   int64
	Emitted int
}

// Sampler counts the records of an input, draws a sorted subset of their
// indices and writes the matching lines to an output
type Sampler struct {
	config Config
	rng    *rand.Rand
	output io.Writer
	log    logger.Logger
	phase  Phase
}

// NewSampler creates a sampler. output receives the sampled records and is
// owned by the caller, who flushes and closes it.
func NewSampler(config Config, rng *rand.Rand, output io.Writer, log logger.Logger) *Sampler {
	return &Sampler{
		config: config,
		rng:    rng,
		output: output,
		log:    log.WithFields(logger.String("input", config.InputPath)),
		phase:  PhaseCounting,
	}
}

// Phase reports the phase the sampler is in, or failed in
func (s *Sampler) Phase() Phase {
	return s.phase
}

// Run executes Counting, Sampling and Emitting in order. The first error
// aborts the run and is returned as a *PhaseError.
func (s *Sampler) Run() (Result, error) {
	var result Result

	s.phase = PhaseCounting
	count, err := CountFile(s.config.InputPath)
	if err != nil {
		return result, s.fail(err)
	}
	result.Records = count.Records
	result.Bytes = count.Bytes

	s.log.Info(fmt.Sprintf("There are %d epireads.", count.Records),
		logger.String("size", bytefmt.ByteSize(uint64(count.Bytes))))

	s.phase = PhaseSampling
	indices, err := SampleIndices(s.rng, count.Records, s.config.SampleSize)
	if err != nil {
		return result, s.fail(err)
	}
	s.log.Debug("Selected epireads", logger.Int("selected", len(indices)))

	s.phase = PhaseEmitting
	in, err := OpenInput(s.config.InputPath)
	if err != nil {
		return result, s.fail(err)
	}
	defer in.Close()

	result.Emitted, err = EmitLines(in, s.output, indices)
	if err != nil {
		return result, s.fail(err)
	}

	s.phase = PhaseDone
	s.log.Debug("Sampling completed", logger.Int("emitted", result.Emitted))
	return result, nil
}

func (s *Sampler) fail(err error) error {
	return &PhaseError{Phase: s.phase, Err: err}
}
