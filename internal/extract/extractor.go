package extract

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"arcqa/internal/classify"
	"arcqa/internal/dedup"
	"arcqa/internal/diagnostic"
	"arcqa/internal/filter"
	"arcqa/internal/model"
	"arcqa/internal/override"
	"arcqa/internal/record"
	"arcqa/internal/vector"
	"arcqa/internal/when"
)

// Skip codes recorded in Result.Diagnostics.
const (
	SkipCell     = "cell_not_requested"
	SkipArcType  = "arc_type_not_requested"
	SkipRule     = "skip_rule"
	SkipDedupCap = "dedup_cap"
	SkipNoDeck   = "no_deck"
)

// Result is the contract handed to deck generation.
type Result struct {
	// Records in emission order.
	Records []record.Record
	// ArcsIdentified counts emissions for which a deck was named.
	ArcsIdentified int
	// Diagnostics explains every skip.
	Diagnostics diagnostic.Diagnostics
}

// Extractor runs the extraction pipeline over a template model.
type Extractor struct {
	model      model.TemplateModel
	classifier classify.Classifier
	config     Config
	logger     *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for skip and summary messages.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Extractor.
func New(m model.TemplateModel, c classify.Classifier, config Config, opts ...Option) *Extractor {
	e := &Extractor{
		model:      m,
		classifier: c,
		config:     config,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run extracts records for every requested arc. A precondition violation
// aborts the run and returns no result.
func (e *Extractor) Run() (*Result, error) {
	if e.model == nil {
		return nil, errors.New("template model is required")
	}

	if e.classifier == nil {
		return nil, errors.New("deck classifier is required")
	}

	run := &runState{
		Extractor: e,
		result:    &Result{},
		limiter:   dedup.NewLimiter(dedup.NewRegistry(), e.config.MaxNumWhen),
	}

	cells := e.model.GetAllCells()
	for ci := range cells {
		if err := run.cell(&cells[ci]); err != nil {
			e.logger.Error("extraction aborted", zap.Error(err))
			return nil, err
		}
	}

	e.logger.Info("extraction finished",
		zap.Int("cells", len(cells)),
		zap.Int("records", len(run.result.Records)),
		zap.Int("arcs_identified", run.result.ArcsIdentified),
		zap.Int("skipped", len(run.result.Diagnostics.Infos)),
		zap.Int("dedup_keys", run.limiter.Registry().Keys()))

	return run.result, nil
}

// runState is the mutable state of one Run call.
type runState struct {
	*Extractor

	result  *Result
	limiter *dedup.Limiter
}

func (r *runState) cell(cell *model.CellSpec) error {
	if !filter.IsValidCell(cell.Name, r.config.CellPatterns) {
		r.skip(SkipCell, "cell name matches no requested pattern", cell, nil)
		return nil
	}

	fam := r.config.Families.Resolve(cell.Name)

	for ai := range cell.Arcs {
		arc := &cell.Arcs[ai]
		if err := r.arc(cell, fam, arc); err != nil {
			var arcErr *model.ArcError
			if errors.As(err, &arcErr) {
				return err
			}

			return model.NewArcError(cell, arc, err)
		}
	}

	return nil
}

func (r *runState) arc(cell *model.CellSpec, fam filter.FamilySet, arc *model.ArcSpec) error {
	if len(r.config.ArcTypes) > 0 && !filter.IsValidArcType(arc.Type, r.config.ArcTypes) {
		r.skip(SkipArcType, fmt.Sprintf("arc type %s not requested", arc.Type), cell, arc)
		return nil
	}

	if err := checkPins(cell, arc); err != nil {
		return err
	}

	decision := r.config.Rules.FilterWhen(filter.SkipContext{
		Cell:     cell.Name,
		Families: fam,
		Pinlist:  cell.Pins,
		Vector:   arc.Vector,
		Probes:   arc.Probe,
	}, arc.When)
	if decision.Skip {
		r.skip(SkipRule, "excluded by rule "+decision.Rule, cell, arc)
		return nil
	}

	indices, err := override.ResolveIndices(arc, cell, r.model)
	if err != nil {
		return err
	}

	tokens := when.Normalize(decision.When)
	literal := when.ToLiteralID(decision.When)
	variants, toggle := vector.Variants(fam, cell.Pins, arc)

	if toggle != vector.ToggleNone {
		r.logger.Debug("toggling vector",
			zap.String("cell", cell.Name),
			zap.String("arc", arc.ID()),
			zap.String("reason", toggle),
			zap.Strings("vectors", variants))
	}

	var loads []string

	for _, vec := range variants {
		criteria := classify.Criteria{
			Cell:          cell.Name,
			ArcType:       arc.Type.String(),
			Pin:           arc.Pin,
			PinDir:        vector.PinDirection(cell.Pins, vec, arc.Pin),
			RelatedPin:    arc.RelatedPin,
			RelatedPinDir: vector.PinDirection(cell.Pins, vec, arc.RelatedPin),
			Probes:        arc.Probe,
			When:          tokens.String(),
			TemplateType:  string(arc.Type.Category()),
		}

		deck, ok := r.classifier.SelectDeck(criteria)

		key := dedup.Key{ArcType: arc.Type, Pin: arc.Pin, RelatedPin: arc.RelatedPin, Vector: vec}
		if !r.limiter.Accept(key, decision.When, ok) {
			r.skip(SkipDedupCap, fmt.Sprintf("more than %d when conditions for %s", r.config.MaxNumWhen, key), cell, arc)
			continue
		}

		if !ok {
			r.skip(SkipNoDeck, "classifier named no deck for vector "+vec, cell, arc)
			continue
		}

		if loads == nil {
			loads, err = record.ResolveOutputLoad(r.model, cell, r.config.Load)
			if err != nil {
				return err
			}
		}

		base := record.Record{
			Cell:            cell.Name,
			ArcType:         arc.Type,
			TemplateType:    arc.Type.Category(),
			Pin:             arc.Pin,
			PinDir:          criteria.PinDir,
			RelatedPin:      arc.RelatedPin,
			RelatedPinDir:   criteria.RelatedPinDir,
			When:            literal,
			RawWhen:         decision.When,
			Probes:          arc.Probe,
			Pinlist:         cell.Pins,
			Outputs:         cell.Outputs,
			Index1:          indices.Index1,
			Index2:          indices.Index2,
			Deck:            deck,
			Metric:          arc.Metric,
			MetricThreshold: arc.MetricThreshold,
			Vector:          vec,
		}

		if literal == when.NoCondition {
			base.SidePins = record.ComputeSidePinStates(cell.Pins, arc.Pin, arc.RelatedPin, vec)
		}

		recs, err := record.BuildRecords(base, loads)
		if err != nil {
			return err
		}

		r.result.Records = append(r.result.Records, recs...)
		r.result.ArcsIdentified++

		r.logger.Debug("arc identified",
			zap.String("cell", cell.Name),
			zap.String("arc", arc.ID()),
			zap.String("deck", deck),
			zap.String("vector", vec),
			zap.Int("records", len(recs)))
	}

	return nil
}

// checkPins enforces the pin-list preconditions of an arc.
func checkPins(cell *model.CellSpec, arc *model.ArcSpec) error {
	if _, err := cell.PinIndex(arc.Pin); err != nil {
		return model.NewArcError(cell, arc, err)
	}

	if _, err := cell.PinIndex(arc.RelatedPin); err != nil {
		return model.NewArcError(cell, arc, err)
	}

	if len(arc.Vector) != len(cell.Pins) {
		return model.NewArcError(cell, arc,
			fmt.Errorf("%w: %q has %d symbols, cell has %d pins",
				model.ErrVectorLength, arc.Vector, len(arc.Vector), len(cell.Pins)))
	}

	return nil
}

func (r *runState) skip(code, msg string, cell *model.CellSpec, arc *model.ArcSpec) {
	arcID := ""
	if arc != nil {
		arcID = arc.ID()
	}

	r.result.Diagnostics.AddInfo(code, msg, cell.Name, arcID)
	r.logger.Debug("skipped",
		zap.String("cell", cell.Name),
		zap.String("arc", arcID),
		zap.String("reason", code),
		zap.String("detail", msg))
}
