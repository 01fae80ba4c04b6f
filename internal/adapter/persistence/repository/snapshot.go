package repository

import (
	"context"
	"encoding/json"
	"gemstore/internal/domain/entities"
	"gemstore/internal/usecase/interfaces"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const DefaultProfile = "default"

// Snapshot keys, relative to the store profile.
const (
	KeyCart          = "cart"
	KeyAppliedCoupon = "coupon-applied-code"
	KeyOrders        = "orders"
	KeyProducts      = "products"
	KeySiteConfig    = "site-config"
)

// SnapshotStore reads and writes whole JSON snapshots under one profile namespace.
//
// Reads never fail on bad data: an unparsable snapshot loads as the empty or
// default value and list elements that fail validation are skipped, each with a
// warning. Only backend errors are returned.

type SnapshotStore struct {
	kv       interfaces.IKeyValueStore
	profile  string
	validate *validator.Validate
	logger   *zap.Logger
}

func NewSnapshotStore(kv interfaces.IKeyValueStore, profile string, logger *zap.Logger) *SnapshotStore {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		profile = DefaultProfile
	}
	return &SnapshotStore{
		kv:       kv,
		profile:  profile,
		validate: newValidator(),
		logger:   logger.Named("snapshot").With(zap.String("profile", profile)),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return entities.OrderStatus(fl.Field().String()).IsValid()
	})
	return v
}

// Key is the namespaced store key for a snapshot name.
func (s *SnapshotStore) Key(name string) string {
	return s.profile + ":" + name
}

func (s *SnapshotStore) raw(ctx context.Context, name string) (string, bool, error) {
	v, found, err := s.kv.Get(ctx, s.Key(name))
	if err != nil {
		return "", false, err
	}
	if !found || strings.TrimSpace(v) == "" {
		return "", false, nil
	}
	return v, true, nil
}

func (s *SnapshotStore) writeJSON(ctx context.Context, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.Key(name), string(b))
}

func (s *SnapshotStore) remove(ctx context.Context, name string) error {
	return s.kv.Remove(ctx, s.Key(name))
}

// SuffixUnreadable names the backup written before an unparsable list snapshot is overwritten.
const SuffixUnreadable = ".unreadable"

type rejectedElement struct {
	index int
	raw   json.RawMessage
	err   error
}

// splitList separates a JSON array snapshot into the elements that decode and
// validate as T and the raw elements that do not.
func splitList[T any](s *SnapshotStore, raw string) ([]T, []rejectedElement, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, nil, err
	}

	kept := make([]T, 0, len(elems))
	var rejected []rejectedElement
	for i, el := range elems {
		var v T
		err := json.Unmarshal(el, &v)
		if err == nil {
			err = s.validate.Struct(v)
		}
		if err != nil {
			rejected = append(rejected, rejectedElement{index: i, raw: el, err: err})
			continue
		}
		kept = append(kept, v)
	}
	return kept, rejected, nil
}

// loadList decodes a JSON array snapshot element by element, keeping the
// elements that decode and validate.
func loadList[T any](ctx context.Context, s *SnapshotStore, name string) ([]T, error) {
	raw, found, err := s.raw(ctx, name)
	if err != nil || !found {
		return nil, err
	}

	out, rejected, err := splitList[T](s, raw)
	if err != nil {
		s.logger.Warn("corrupt snapshot, using empty value", zap.String("key", name), zap.Error(err))
		return nil, nil
	}
	for _, r := range rejected {
		s.logger.Warn("skipping unreadable element", zap.String("key", name), zap.Int("index", r.index), zap.Error(r.err))
	}
	return out, nil
}

// saveListKeepingRejected writes items as the list snapshot. Elements of the
// current snapshot that loadList skips are appended unchanged, and an
// unparsable snapshot is copied to name+SuffixUnreadable before it is replaced.
func saveListKeepingRejected[T any](ctx context.Context, s *SnapshotStore, name string, items []T) error {
	out := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			return err
		}
		out = append(out, b)
	}

	raw, found, err := s.raw(ctx, name)
	if err != nil {
		return err
	}
	if found {
		_, rejected, err := splitList[T](s, raw)
		if err != nil {
			s.logger.Warn("backing up corrupt snapshot before overwrite", zap.String("key", name), zap.Error(err))
			if err := s.kv.Set(ctx, s.Key(name+SuffixUnreadable), raw); err != nil {
				return err
			}
		}
		for _, r := range rejected {
			out = append(out, r.raw)
		}
		if len(rejected) > 0 {
			s.logger.Warn("keeping unreadable elements", zap.String("key", name), zap.Int("count", len(rejected)))
		}
	}
	return s.writeJSON(ctx, name, out)
}

// loadObject decodes a single JSON object snapshot, falling back to def.
func loadObject[T any](ctx context.Context, s *SnapshotStore, name string, def T) (T, error) {
	raw, found, err := s.raw(ctx, name)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("corrupt snapshot, using default", zap.String("key", name), zap.Error(err))
		return def, nil
	}
	if err := s.validate.Struct(v); err != nil {
		s.logger.Warn("invalid snapshot, using default", zap.String("key", name), zap.Error(err))
		return def, nil
	}
	return v, nil
}
