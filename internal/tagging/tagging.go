// Package tagging implements service.Service on top of the attribute store.
//
// Every mutating operation is a single read followed by a single write of
// the attribute. There is no locking: two processes updating the same path
// at once can lose one of the updates.
package tagging

import (
	"context"
	"fmt"

	"github.com/jpl-au/ftag/extension"
	"github.com/jpl-au/ftag/internal/attr"
	"github.com/jpl-au/ftag/internal/log"
	"github.com/jpl-au/ftag/internal/service"
	"github.com/jpl-au/ftag/internal/store"
	"github.com/jpl-au/ftag/internal/tagset"
	"github.com/jpl-au/ftag/internal/validate"
)

// Service provides tag operations backed by a Store.
type Service struct {
	store  *store.Store
	extCtx extension.Context // for firing events to extensions
}

var _ service.Service = (*Service)(nil)

// New creates a Service storing tags through a.
func New(a attr.Accessor) *Service {
	return &Service{store: store.New(a)}
}

// SetExtensionContext sets the extension context for firing events.
// Called from cmd after creating the context.
func (s *Service) SetExtensionContext(ctx extension.Context) {
	s.extCtx = ctx
}

// Attribute returns the extended attribute name tags are stored under.
func (s *Service) Attribute() string {
	return s.store.Attribute()
}

// List returns the stored tags for path.
func (s *Service) List(ctx context.Context, path string) ([]string, error) {
	if err := validate.Path(path); err != nil {
		return nil, err
	}
	tags, err := s.store.Tags(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	return tags, nil
}

// Set adds normalised tags to path.
func (s *Service) Set(ctx context.Context, path string, tags []string, opts service.Options) (service.Change, error) {
	change := service.Change{Path: path, DryRun: opts.DryRun}
	if err := validate.Path(path); err != nil {
		return change, err
	}
	if err := validate.Tags(tags); err != nil {
		return change, err
	}

	stored, err := s.store.Tags(ctx, path)
	if err != nil {
		return change, fmt.Errorf("set %s: %w", path, err)
	}
	change.Before = stored
	change.Tags, change.Added = tagset.Merge(stored, tags)

	if opts.DryRun {
		return change, nil
	}
	if err := s.store.Write(ctx, path, change.Tags); err != nil {
		return change, fmt.Errorf("set %s: %w", path, err)
	}
	for _, t := range change.Added {
		s.fireEvent(extension.TagEvent{Path: path, Tag: t, Source: opts.Source, Added: true})
	}
	return change, nil
}

// Remove drops literally matching tags from path.
func (s *Service) Remove(ctx context.Context, path string, tags []string, opts service.Options) (service.Change, error) {
	change := service.Change{Path: path, DryRun: opts.DryRun}
	if err := validate.Path(path); err != nil {
		return change, err
	}

	stored, err := s.store.Tags(ctx, path)
	if err != nil {
		return change, fmt.Errorf("rm %s: %w", path, err)
	}
	change.Before = stored
	change.Tags, change.Removed = tagset.Filter(stored, tags)

	if opts.DryRun {
		return change, nil
	}
	if err := s.store.Write(ctx, path, change.Tags); err != nil {
		return change, fmt.Errorf("rm %s: %w", path, err)
	}
	for _, t := range change.Removed {
		s.fireEvent(extension.TagEvent{Path: path, Tag: t, Source: opts.Source, Added: false})
	}
	return change, nil
}

// fireEvent notifies all registered extension event handlers.
// Handler errors are logged, never returned: the change is already written.
func (s *Service) fireEvent(e extension.Event) {
	if s.extCtx == nil {
		return
	}
	extension.Fire(s.extCtx, e, func(ext extension.Extension, err error) {
		log.Event("event:error", "error").
			Path(e.EventPath()).
			Attribute(s.Attribute()).
			Detail("ext", ext.Name()).
			Detail("event", string(e.EventType())).
			Write(err)
	})
}
