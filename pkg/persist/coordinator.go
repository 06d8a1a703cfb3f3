package persist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bft-labs/udostore/pkg/log"
	"github.com/bft-labs/udostore/pkg/textstore"
	"github.com/bft-labs/udostore/pkg/udo"
)

// Coordinator persists one UDO to one storage location.
// It keeps no copy of the mapping between calls.
type Coordinator struct {
	storage  textstore.Storage
	primary  udo.Codec
	decoders []udo.Codec
	logger   log.Logger
}

// New creates a Coordinator over storage. The storage lifecycle stays with
// the caller.
func New(storage textstore.Storage, opts ...Option) *Coordinator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	decoders := make([]udo.Codec, 0, 1+len(o.fallbacks))
	decoders = append(decoders, o.primary)
	decoders = append(decoders, o.fallbacks...)

	return &Coordinator{
		storage:  storage,
		primary:  o.primary,
		decoders: decoders,
		logger:   o.logger,
	}
}

// DefaultPath returns ~/.udo/udo.json, or a relative .udo/udo.json when the
// home directory cannot be determined.
func DefaultPath() string {
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return filepath.Join(h, ".udo", "udo.json")
	}
	return filepath.Join(".udo", "udo.json")
}

// Open creates a Coordinator backed by the file at path.
func Open(path string, opts ...Option) *Coordinator {
	return New(textstore.NewFileStorage(path), opts...)
}

// Load returns the stored UDO, or def when nothing usable is stored.
//
// A missing, unreadable, empty or undecodable location resolves to def, which
// is then saved so later loads observe it. Load returns def even if that save
// fails. The error is non-nil only when def cannot be encoded.
func (c *Coordinator) Load(def udo.Udo) (udo.Udo, error) {
	if u, ok := c.Read(); ok {
		return u, nil
	}

	c.logger.Info("adopting default udo", log.Int("keys", len(def)))
	if err := c.Save(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Save writes u using the primary codec. Storage faults are logged and
// dropped; u remains the caller's source of truth. The error is non-nil only
// when u cannot be encoded.
func (c *Coordinator) Save(u udo.Udo) error {
	text, err := c.primary.Encode(u)
	if err != nil {
		return err
	}

	if err := c.storage.WriteText(text); err != nil {
		c.logger.Warn("udo write failed, keeping in-memory copy", log.Err(err))
	}
	return nil
}

// Exists reports whether the storage location currently exists.
func (c *Coordinator) Exists() bool {
	return c.storage.Exists()
}

// Update loads the UDO (adopting def as Load does), applies fn to a copy and
// saves the result. The updated copy is returned even when the write is
// dropped.
func (c *Coordinator) Update(def udo.Udo, fn func(udo.Udo)) (udo.Udo, error) {
	current, err := c.Load(def)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	fn(next)
	if err := c.Save(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Read returns the stored UDO without ever writing. It reports false when
// storage is missing, unreadable, empty or undecodable.
func (c *Coordinator) Read() (udo.Udo, bool) {
	text, err := c.storage.ReadText()
	if errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("no stored udo")
		return nil, false
	}
	if err != nil {
		c.logger.Warn("udo read failed", log.Err(err))
		return nil, false
	}
	if text == "" {
		c.logger.Debug("udo storage is empty")
		return nil, false
	}
	return c.decode(text)
}

// decode tries each decoder in order; the first success wins.
func (c *Coordinator) decode(text string) (udo.Udo, bool) {
	tried := make([]string, 0, len(c.decoders))
	for _, codec := range c.decoders {
		u, err := codec.Decode(text)
		if err == nil {
			c.logger.Debug("udo decoded", log.String("codec", codec.Name()), log.Int("keys", len(u)))
			return u, true
		}
		tried = append(tried, codec.Name())
	}
	c.logger.Warn("udo text could not be decoded", log.Strings("codecs", tried))
	return nil, false
}
