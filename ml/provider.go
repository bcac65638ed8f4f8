package ml

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

type LoadMode string

const (
	// LoadOnce loads both artifacts when the provider is built and fails fast.
	LoadOnce LoadMode = "once"
	// LoadLazy loads on first use and keeps the first successful result.
	LoadLazy LoadMode = "lazy"
	// LoadPerRequest reads both artifacts from disk on every request.
	LoadPerRequest LoadMode = "per_request"
	// LoadWatch behaves like LoadLazy and evicts an artifact when its file changes.
	LoadWatch LoadMode = "watch"
)

func (m LoadMode) Valid() bool {
	switch m {
	case LoadOnce, LoadLazy, LoadPerRequest, LoadWatch:
		return true
	}
	return false
}

type ProviderConfig struct {
	ModelType string
	CCPath    string
	SIPath    string
	Mode      LoadMode
	CacheSize int
}

// minCacheSize keeps both artifacts resident at once.
const minCacheSize = 2

// swapped in tests
var loadModel = LoadModel

type Provider struct {
	config  ProviderConfig
	ccPath  string
	siPath  string
	cache   *lru.Cache[string, Regressor]
	watcher *fsnotify.Watcher
	logger  *zap.Logger

	// bumped on every eviction; a load that raced one is not cached
	generation atomic.Uint64

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewProvider(config ProviderConfig, logger *zap.Logger) (*Provider, error) {
	if !config.Mode.Valid() {
		return nil, fmt.Errorf("unsupported load mode %q", config.Mode)
	}
	if config.CCPath == "" || config.SIPath == "" {
		return nil, fmt.Errorf("both model paths are required")
	}
	if config.CacheSize <= 0 {
		config.CacheSize = 4
	}
	if config.CacheSize < minCacheSize {
		config.CacheSize = minCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lru.New[string, Regressor](config.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create model cache: %w", err)
	}

	p := &Provider{
		config: config,
		ccPath: absPath(config.CCPath),
		siPath: absPath(config.SIPath),
		cache:  cache,
		logger: logger.Named("models"),
		done:   make(chan struct{}),
	}

	switch config.Mode {
	case LoadOnce:
		if _, _, err := p.Models(context.Background()); err != nil {
			return nil, err
		}
	case LoadWatch:
		if err := p.startWatcher(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Provider) Mode() LoadMode {
	return p.config.Mode
}

func (p *Provider) Models(ctx context.Context) (Regressor, Regressor, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	cc, err := p.get(p.ccPath)
	if err != nil {
		return nil, nil, err
	}
	si, err := p.get(p.siPath)
	if err != nil {
		return nil, nil, err
	}
	return cc, si, nil
}

func (p *Provider) get(path string) (Regressor, error) {
	if p.config.Mode != LoadPerRequest {
		if model, ok := p.cache.Get(path); ok {
			return model, nil
		}
	}

	gen := p.generation.Load()
	model, err := loadModel(p.config.ModelType, path)
	if err != nil {
		p.logger.Warn("model load failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("load model %s: %w", filepath.Base(path), err)
	}
	p.logger.Debug("model loaded", zap.String("path", path), zap.String("mode", string(p.config.Mode)))

	if p.config.Mode != LoadPerRequest && p.generation.Load() == gen {
		p.cache.Add(path, model)
	}
	return model, nil
}

// Evict drops a cached artifact so the next request reloads it.
func (p *Provider) Evict(path string) bool {
	return p.evict(absPath(path))
}

func (p *Provider) evict(path string) bool {
	p.generation.Add(1)
	return p.cache.Remove(path)
}

func (p *Provider) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dirs := map[string]struct{}{
		filepath.Dir(p.ccPath): {},
		filepath.Dir(p.siPath): {},
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	p.watcher = watcher
	p.wg.Add(1)
	go p.watch()
	return nil
}

func (p *Provider) watch() {
	defer p.wg.Done()
	const changed = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if event.Op&changed == 0 {
				continue
			}
			path := absPath(event.Name)
			if path != p.ccPath && path != p.siPath {
				continue
			}
			if p.evict(path) {
				p.logger.Info("model artifact changed, evicted", zap.String("path", path), zap.String("op", event.Op.String()))
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.logger.Warn("model watcher error", zap.Error(err))
		case <-p.done:
			return
		}
	}
}

func (p *Provider) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)
		if p.watcher != nil {
			err = p.watcher.Close()
		}
		p.wg.Wait()
	})
	return err
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
