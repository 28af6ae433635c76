package resample

// Options holds the recognized configuration keys from spec.md 6. Each
// field is a pointer so New/Update can tell "not set, use the method's
// default" apart from "set to the zero value" — the options-bag
// reimplementation the design notes in spec.md 9 call for, grounded on the
// config-struct-plus-functional-options pattern in
// _examples/other_examples's CWBudde/algo-dsp resample package.
type Options struct {
	Cutoff              *float64
	DownCutoffFactor    *float64
	StopAttenuationDB   *float64
	TransitionBandwidth *float64
	CubicB              *float64
	CubicC              *float64
	NTaps               *int
	FilterMode          *FilterMode
	FilterModeThreshold *int
	FilterInterpolation *FilterInterpolation
	FilterOversample    *int
	MaxPhaseError       *float64

	// OnWarning receives non-fatal feasibility warnings (spec.md 7), e.g.
	// when the DC-bias search in quantizeRow does not converge. Logging
	// itself is out of scope for this package (spec.md 1); this is a
	// plain injectable callback, nil by default (silently dropped).
	OnWarning func(string)
}

// Option mutates an Options value being built up by New/Update.
type Option func(*Options)

func WithCutoff(v float64) Option {
	return func(o *Options) { o.Cutoff = &v }
}

func WithDownCutoffFactor(v float64) Option {
	return func(o *Options) { o.DownCutoffFactor = &v }
}

func WithStopAttenuationDB(v float64) Option {
	return func(o *Options) { o.StopAttenuationDB = &v }
}

func WithTransitionBandwidth(v float64) Option {
	return func(o *Options) { o.TransitionBandwidth = &v }
}

func WithCubicBC(b, c float64) Option {
	return func(o *Options) { o.CubicB = &b; o.CubicC = &c }
}

func WithNTaps(n int) Option {
	return func(o *Options) { o.NTaps = &n }
}

func WithFilterMode(m FilterMode) Option {
	return func(o *Options) { o.FilterMode = &m }
}

func WithFilterModeThreshold(n int) Option {
	return func(o *Options) { o.FilterModeThreshold = &n }
}

func WithFilterInterpolation(i FilterInterpolation) Option {
	return func(o *Options) { o.FilterInterpolation = &i }
}

func WithFilterOversample(n int) Option {
	return func(o *Options) { o.FilterOversample = &n }
}

func WithMaxPhaseError(v float64) Option {
	return func(o *Options) { o.MaxPhaseError = &v }
}

func WithOnWarning(f func(string)) Option {
	return func(o *Options) { o.OnWarning = f }
}

// merge applies opts on top of the receiver, returning the result. Used by
// Update to layer new options over the instance's previously stored copy
// (spec.md 4.H step 4: "Replace stored options (copy)").
func (o Options) merge(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// qualityStopAttenuationDB, qualityTransitionBandwidth, qualityCutoff, and
// qualityOversample are the quality-preset tuples referenced by spec.md 6
// ("Quality presets (0..10) map to fixed option tuples"). The retrieval
// pack's copy of spec.md elides the literal table values it references, so
// these are authored here following the same Kaiser design formulas as
// spec.md 4.H step 4 (attenuation/transition-bandwidth pairs, increasing
// monotonically in quality) — see DESIGN.md for the Open Question entry.
var qualityStopAttenuationDB = [11]float64{40, 50, 60, 70, 80, 85, 90, 95, 100, 105, 110}
var qualityTransitionBandwidth = [11]float64{0.15, 0.12, 0.10, 0.08, 0.07, 0.06, 0.05, 0.045, 0.04, 0.035, 0.03}
var qualityCutoff = [11]float64{0.80, 0.82, 0.85, 0.88, 0.90, 0.92, 0.94, 0.95, 0.96, 0.97, 0.98}
var qualityOversample = [11]int{4, 4, 4, 8, 8, 16, 16, 16, 16, 32, 32}

// qualityBlackmanNuttallNTaps and qualityBlackmanNuttallCutoff are the
// Blackman-Nuttall quality tuples (n_taps, cutoff) referenced by the same
// spec.md 6 paragraph; Blackman-Nuttall has no beta/stopband parameter, so
// taps are tabulated directly rather than derived.
var qualityBlackmanNuttallNTaps = [11]int{8, 8, 16, 16, 24, 32, 32, 48, 64, 64, 96}
var qualityBlackmanNuttallCutoff = [11]float64{0.80, 0.82, 0.85, 0.88, 0.90, 0.92, 0.94, 0.95, 0.96, 0.97, 0.98}

// qualityOptions returns the Options a quality preset expands to for the
// given method. Quality must be validated (validQuality) before calling.
func qualityOptions(method Method, quality int) Options {
	oversample := qualityOversample[quality]
	switch method {
	case MethodKaiser:
		stopDB := qualityStopAttenuationDB[quality]
		trBW := qualityTransitionBandwidth[quality]
		cutoff := qualityCutoff[quality]
		return Options{
			Cutoff:              &cutoff,
			StopAttenuationDB:   &stopDB,
			TransitionBandwidth: &trBW,
			FilterOversample:    &oversample,
		}
	case MethodBlackmanNuttall:
		nTaps := qualityBlackmanNuttallNTaps[quality]
		cutoff := qualityBlackmanNuttallCutoff[quality]
		return Options{
			Cutoff:           &cutoff,
			NTaps:            &nTaps,
			FilterOversample: &oversample,
		}
	default:
		return Options{FilterOversample: &oversample}
	}
}
