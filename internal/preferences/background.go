package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const (
	KeyBackground        = "weather-dashboard-background"
	KeyCustomBackgrounds = "weather-dashboard-custom-backgrounds"

	dataURLPrefix = "data:image/"

	// MaxCustomBackgroundBytes caps the size of one uploaded data URL
	MaxCustomBackgroundBytes = 5 << 20
)

var (
	ErrInvalidIndex      = errors.New("custom background index out of range")
	ErrInvalidBackground = errors.New("invalid background")
)

// Preset is a built-in background image
type Preset struct {
	Name string `json:"name" example:"Tropical Beach"`
	URL  string `json:"url"`
}

var presets = []Preset{
	{Name: "Tropical Beach", URL: "https://muralsyourway.vtexassets.com/arquivos/ids/236286/Tropical-Beach-At-Sunset-Mural-Wallpaper.jpg?v=638164405127130000"},
	{Name: "Ocean View", URL: "https://images.unsplash.com/photo-1505142468610-359e7d316be0?w=1920&h=1080&fit=crop"},
	{Name: "Mountain Top", URL: "https://upload.wikimedia.org/wikipedia/commons/6/60/Matterhorn_from_Domh%C3%BCtte_-_2.jpg"},
	{Name: "Mountain Lake", URL: "https://www.rockymountaineer.com/sites/default/files/bp_summary_image/Emerald%20Lake%20-%20Credit%20Suran%20Gaw%2C%20Adobe%20Stock_1_0.jpeg"},
	{Name: "Desert Sunset", URL: "https://www.mosaicnorthafrica.com/wp-content/uploads/2023/08/sunset-in-moroccan-sahara-desert.jpg"},
	{Name: "City Skyline", URL: "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=1920&h=1080&fit=crop"},
	{Name: "Aurora Borealis", URL: "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=1920&h=1080&fit=crop"},
	{Name: "Lavender Field", URL: "https://offloadmedia.feverup.com/secretldn.com/wp-content/uploads/2020/07/15045913/shutterstock_1175295904.jpg"},
}

// Presets returns a copy of the built-in backgrounds
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// BackgroundState is the selected background plus everything selectable
type BackgroundState struct {
	Selected string   `json:"selected"`
	Presets  []Preset `json:"presets"`
	Custom   []string `json:"custom"`
}

// Backgrounds manages the background preference. State is read from the
// store once by Load and every change is written back immediately.
type Backgrounds struct {
	store  Store
	logger *slog.Logger

	mu       sync.RWMutex
	selected string
	custom   []string
}

func NewBackgrounds(store Store, logger *slog.Logger) *Backgrounds {
	return &Backgrounds{
		store:    store,
		logger:   logger.With("component", "background-preferences"),
		selected: presets[0].URL,
		custom:   []string{},
	}
}

// Load reads the saved preference. An unset selection falls back to the first
// preset and an unreadable custom list is treated as empty.
func (b *Backgrounds) Load(ctx context.Context) error {
	selected, ok, err := b.store.Get(ctx, KeyBackground)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", KeyBackground, err)
	}
	if !ok || selected == "" {
		selected = presets[0].URL
	}

	raw, ok, err := b.store.Get(ctx, KeyCustomBackgrounds)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", KeyCustomBackgrounds, err)
	}
	custom := []string{}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &custom); err != nil {
			b.logger.Warn("discarding unreadable custom backgrounds", "error", err)
			custom = []string{}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected = selected
	b.custom = custom

	b.logger.Debug("loaded background preferences", "custom", len(custom))
	return nil
}

// State returns a snapshot of the preference
func (b *Backgrounds) State() BackgroundState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stateLocked()
}

// Select makes url the active background
func (b *Backgrounds) Select(ctx context.Context, url string) (BackgroundState, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return BackgroundState{}, fmt.Errorf("%w: empty url", ErrInvalidBackground)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.store.Set(ctx, KeyBackground, url); err != nil {
		return BackgroundState{}, fmt.Errorf("failed to save %s: %w", KeyBackground, err)
	}
	b.selected = url

	return b.stateLocked(), nil
}

// AddCustom appends an uploaded image, given as a data URL
func (b *Backgrounds) AddCustom(ctx context.Context, dataURL string) (BackgroundState, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return BackgroundState{}, fmt.Errorf("%w: expected a %s data URL", ErrInvalidBackground, dataURLPrefix)
	}
	if len(dataURL) > MaxCustomBackgroundBytes {
		return BackgroundState{}, fmt.Errorf("%w: image exceeds %d bytes", ErrInvalidBackground, MaxCustomBackgroundBytes)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	custom := append(append(make([]string, 0, len(b.custom)+1), b.custom...), dataURL)
	if err := b.saveCustom(ctx, custom); err != nil {
		return BackgroundState{}, err
	}
	b.custom = custom

	return b.stateLocked(), nil
}

// RemoveCustom deletes the custom background at index. The selection is left
// untouched even when it pointed at the removed image.
func (b *Backgrounds) RemoveCustom(ctx context.Context, index int) (BackgroundState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.custom) {
		return BackgroundState{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	custom := make([]string, 0, len(b.custom)-1)
	custom = append(custom, b.custom[:index]...)
	custom = append(custom, b.custom[index+1:]...)
	if err := b.saveCustom(ctx, custom); err != nil {
		return BackgroundState{}, err
	}
	b.custom = custom

	return b.stateLocked(), nil
}

func (b *Backgrounds) saveCustom(ctx context.Context, custom []string) error {
	raw, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("failed to encode custom backgrounds: %w", err)
	}
	if err := b.store.Set(ctx, KeyCustomBackgrounds, string(raw)); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyCustomBackgrounds, err)
	}
	return nil
}

func (b *Backgrounds) stateLocked() BackgroundState {
	custom := make([]string, len(b.custom))
	copy(custom, b.custom)
	return BackgroundState{
		Selected: b.selected,
		Presets:  Presets(),
		Custom:   custom,
	}
}
