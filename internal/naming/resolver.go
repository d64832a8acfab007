package naming

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Dreadlight_Go/internal/domain"
)

// AliasPool contains alias variants for an item
type AliasPool struct {
	Default []string            `json:"default"`
	Themes  map[string][]string `json:"themes"`
}

// ThemePeriod defines the active period for a theme
type ThemePeriod struct {
	Start string `json:"start"` // MM-DD format
	End   string `json:"end"`   // MM-DD format
}

// Resolver maps player-facing names to item ids and back
type Resolver interface {
	// ResolvePublicName converts a public name, display name or alias to an item id
	ResolvePublicName(publicName string) (itemID string, ok bool)

	// GetDisplayName returns the name shown to the player
	GetDisplayName(itemID string) string

	// GetActiveTheme returns the currently active theme based on date
	GetActiveTheme() string

	// Reload reloads the alias and theme configurations
	Reload() error

	// RegisterItem registers an item for name resolution
	RegisterItem(itemID, publicName, displayName string)
}

type resolver struct {
	mu sync.RWMutex

	// normalized name -> item id
	nameToID map[string]string

	// item id -> registered display name
	displayNames map[string]string

	aliases map[string]AliasPool
	themes  map[string]ThemePeriod

	// raw lookup string -> item id
	cache *expirable.LRU[string, string]

	aliasesPath string
	themesPath  string
	now         func() time.Time
}

// NewResolver creates a resolver. Missing config files are not an error.
func NewResolver(aliasesPath, themesPath string) (Resolver, error) {
	r := newResolver(aliasesPath, themesPath)
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func newResolver(aliasesPath, themesPath string) *resolver {
	return &resolver{
		nameToID:     make(map[string]string),
		displayNames: make(map[string]string),
		aliases:      make(map[string]AliasPool),
		themes:       make(map[string]ThemePeriod),
		cache:        expirable.NewLRU[string, string](DefaultCacheSize, nil, DefaultCacheTTL*time.Second),
		aliasesPath:  aliasesPath,
		themesPath:   themesPath,
		now:          time.Now,
	}
}

// RegisterCatalog registers every item's id, public and display names
func RegisterCatalog(r Resolver, items []domain.Item) {
	for _, it := range items {
		r.RegisterItem(it.ID, it.PublicName, it.DisplayName)
	}
}

// normalize folds case and treats spaces, hyphens and underscores alike
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

// RegisterItem adds name -> id mappings for the id itself and any non-empty names
func (r *resolver) RegisterItem(itemID, publicName, displayName string) {
	if itemID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range []string{itemID, publicName, displayName} {
		if name != "" {
			r.nameToID[normalize(name)] = itemID
		}
	}
	if displayName != "" {
		r.displayNames[itemID] = displayName
	} else if publicName != "" {
		r.displayNames[itemID] = publicName
	}
	r.cache.Purge()
}

// ResolvePublicName converts a player-facing name to an item id
func (r *resolver) ResolvePublicName(publicName string) (string, bool) {
	if id, ok := r.cache.Get(publicName); ok {
		return id, true
	}

	r.mu.RLock()
	id, ok := r.nameToID[normalize(publicName)]
	r.mu.RUnlock()

	if ok {
		r.cache.Add(publicName, id)
	}
	return id, ok
}

// GetDisplayName picks a themed alias, then a default alias, then the
// registered display name, then a title-cased id
func (r *resolver) GetDisplayName(itemID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if pool, ok := r.aliases[itemID]; ok {
		var aliases []string
		if theme := r.getActiveThemeUnlocked(); theme != "" {
			aliases = pool.Themes[theme]
		}
		if len(aliases) == 0 {
			aliases = pool.Default
		}
		if len(aliases) > 0 {
			return aliases[rand.IntN(len(aliases))]
		}
	}

	if name, ok := r.displayNames[itemID]; ok {
		return name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(itemID, "_", " "))
}

// GetActiveTheme returns the currently active theme
func (r *resolver) GetActiveTheme() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getActiveThemeUnlocked()
}

// getActiveThemeUnlocked returns active theme (caller must hold lock)
func (r *resolver) getActiveThemeUnlocked() string {
	now := r.now()
	for theme, period := range r.themes {
		if isInPeriod(now, period.Start, period.End) {
			return theme
		}
	}
	return ""
}

// isInPeriod checks if current time is within the period (handles year wrap)
func isInPeriod(now time.Time, startStr, endStr string) bool {
	startMonth, startDay := parseMonthDay(startStr)
	endMonth, endDay := parseMonthDay(endStr)

	if startMonth == 0 || endMonth == 0 {
		return false
	}

	current := int(now.Month())*DateComparisonMultiplier + now.Day()
	start := startMonth*DateComparisonMultiplier + startDay
	end := endMonth*DateComparisonMultiplier + endDay

	if start <= end {
		return current >= start && current <= end
	}
	// Year-wrapping range (e.g., 12-15 to 01-05)
	return current >= start || current <= end
}

// parseMonthDay parses "MM-DD" format
func parseMonthDay(s string) (month, day int) {
	parts := strings.Split(s, DateSeparator)
	if len(parts) != DatePartsCount {
		return 0, 0
	}
	month, _ = strconv.Atoi(parts[0])
	day, _ = strconv.Atoi(parts[1])
	return
}

// Reload reloads the alias and theme configurations. Aliases also become
// resolvable names.
func (r *resolver) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.aliasesPath != "" {
		if err := r.loadAliases(); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToLoadAliases, err)
		}
	}
	if r.themesPath != "" {
		if err := r.loadThemes(); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToLoadThemes, err)
		}
	}

	for id, pool := range r.aliases {
		for _, alias := range pool.Default {
			r.nameToID[normalize(alias)] = id
		}
		for _, themed := range pool.Themes {
			for _, alias := range themed {
				r.nameToID[normalize(alias)] = id
			}
		}
	}
	r.cache.Purge()
	return nil
}

func (r *resolver) loadVersionedConfig(path string, target interface{}, schema string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var wrapper struct {
		Version string `json:"version"`
		Schema  string `json:"schema"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf(ErrContextFailedToParseConfig+": %w", path, err)
	}

	if wrapper.Version == "" {
		return fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if wrapper.Schema != schema {
		return fmt.Errorf(ErrMsgInvalidSchema, path, schema, wrapper.Schema)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrContextFailedToDecodeData+": %w", path, err)
	}
	return nil
}

func (r *resolver) loadAliases() error {
	var config struct {
		Aliases map[string]AliasPool `json:"aliases"`
	}
	if err := r.loadVersionedConfig(r.aliasesPath, &config, SchemaItemAliases); err != nil {
		return err
	}
	if config.Aliases != nil {
		r.aliases = config.Aliases
	}
	return nil
}

func (r *resolver) loadThemes() error {
	var config struct {
		Themes map[string]ThemePeriod `json:"themes"`
	}
	if err := r.loadVersionedConfig(r.themesPath, &config, SchemaItemThemes); err != nil {
		return err
	}
	if config.Themes != nil {
		r.themes = config.Themes
	}
	return nil
}
