// Package adapt converts tuples, points, vectors and colors between channel
// types. A Registry maps each target capability to the adapters able to
// produce it; Convert picks the lowest-weight adapter whose source
// capability (and tag, if any) the value satisfies and wraps the value in it.
//
// Adapters forward to the wrapped value: reads convert the current source
// component on every call and writes through a mutable adapter modify the
// source.
package adapt

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
	"github.com/wudi/geomkit/observability"
)

type shapePair struct {
	src, dst geom.Shape
}

// Registry is an immutable table of adapter descriptors. It is safe for
// concurrent use once New returns.
type Registry struct {
	all      []*Descriptor
	byTarget map[geom.Capability][]*Descriptor
	byShape  map[shapePair][]*Descriptor
	logger   observability.Logger
}

type config struct {
	logger      observability.Logger
	color       bool
	colorWeight int
	extra       []func(*builder)
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the logger used for registry diagnostics.
func WithLogger(l observability.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithoutColor leaves out the color descriptors, so colors convert like
// plain tuples.
func WithoutColor() Option {
	return func(c *config) {
		c.color = false
	}
}

// WithColorWeight overrides ColorWeight for the color descriptors.
func WithColorWeight(w int) Option {
	return func(c *config) {
		c.colorWeight = w
	}
}

// WithDescriptors registers additional descriptors after the built-in ones.
func WithDescriptors(ds ...Descriptor) Option {
	return func(c *config) {
		c.extra = append(c.extra, func(b *builder) {
			for _, d := range ds {
				b.add(d)
			}
		})
	}
}

// WithPolicy registers adapters from S to D for every dimension and role,
// built with p, at the given weight. A tag other than TagNone restricts them
// to sources carrying that tag.
func WithPolicy[S, D channel.Type](p channel.Policy[S, D], weight int, tag Tag) Option {
	return func(c *config) {
		c.extra = append(c.extra, func(b *builder) {
			registerPair(b, p, weight, tag)
		})
	}
}

type builder struct {
	ds []*Descriptor
}

func (b *builder) add(d Descriptor) {
	if d.accept == nil || d.build == nil {
		panic(fmt.Sprintf("adapt: descriptor %s was not created with NewDescriptor", d))
	}
	d.seq = len(b.ds)
	b.ds = append(b.ds, &d)
}

// New builds a registry holding the plain numeric adapters for every
// ordered pair of channel kinds, the color adapters, and whatever the
// options add.
func New(opts ...Option) *Registry {
	cfg := config{
		logger:      observability.NopLogger{},
		color:       true,
		colorWeight: ColorWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &builder{}
	registerStandard(b)
	if cfg.color {
		registerColor(b, cfg.colorWeight)
	}
	for _, f := range cfg.extra {
		f(b)
	}

	r := &Registry{
		all:      b.ds,
		byTarget: make(map[geom.Capability][]*Descriptor),
		byShape:  make(map[shapePair][]*Descriptor),
		logger:   cfg.logger,
	}
	for _, d := range b.ds {
		r.byTarget[d.Target] = append(r.byTarget[d.Target], d)
		k := shapePair{d.Source.Shape(), d.Target.Shape()}
		r.byShape[k] = append(r.byShape[k], d)
	}
	for _, list := range r.byTarget {
		sortByWeight(list)
	}
	for _, list := range r.byShape {
		sortByWeight(list)
	}

	r.logger.Debug("conversion registry populated",
		observability.Int("descriptors", len(r.all)),
		observability.Int("targets", len(r.byTarget)))
	return r
}

func sortByWeight(list []*Descriptor) {
	slices.SortStableFunc(list, func(a, b *Descriptor) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, building it on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Convert returns src as a D. If src already implements D it is returned
// unchanged; otherwise the best matching adapter wraps it. A nil r means
// the Default registry.
func Convert[D any](r *Registry, src any, to Target[D]) (D, error) {
	var zero D
	if src == nil {
		return zero, ErrNilSource
	}
	if r == nil {
		r = Default()
	}
	if d, ok := src.(D); ok {
		return d, nil
	}
	desc := r.find(src, to.cap)
	if desc == nil {
		err := &ConversionError{Source: describe(src), Target: to.cap}
		r.logger.Debug("no conversion available",
			observability.String("source", err.Source),
			observability.Stringer("target", to.cap))
		return zero, err
	}
	out, ok := desc.build(r, src).(D)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrBadDescriptor, desc)
	}
	return out, nil
}

// As converts src with the Default registry.
func As[D any](src any, to Target[D]) (D, error) {
	return Convert(Default(), src, to)
}

// MustConvert is like Convert but panics on error.
func MustConvert[D any](r *Registry, src any, to Target[D]) D {
	d, err := Convert(r, src, to)
	if err != nil {
		panic(err)
	}
	return d
}

func (r *Registry) find(src any, target geom.Capability) *Descriptor {
	for _, d := range r.byTarget[target] {
		if d.Matches(src) {
			return d
		}
	}
	return nil
}

// Select returns the descriptor Convert would use to adapt src to target.
func (r *Registry) Select(src any, target geom.Capability) (Descriptor, bool) {
	if d := r.find(src, target); d != nil {
		return *d, true
	}
	return Descriptor{}, false
}

// Candidates returns the descriptors producing target, in the order Convert
// tries them.
func (r *Registry) Candidates(target geom.Capability) []Descriptor {
	return snapshot(r.byTarget[target])
}

// Lookup returns the descriptors converting between two shapes, lowest
// weight first.
func (r *Registry) Lookup(src, dst geom.Shape) []Descriptor {
	return snapshot(r.byShape[shapePair{src, dst}])
}

// Descriptors returns every descriptor in registration order.
func (r *Registry) Descriptors() []Descriptor {
	return snapshot(r.all)
}

// Len reports the number of registered descriptors.
func (r *Registry) Len() int { return len(r.all) }

func snapshot(list []*Descriptor) []Descriptor {
	out := make([]Descriptor, len(list))
	for i, d := range list {
		out[i] = *d
	}
	return out
}
