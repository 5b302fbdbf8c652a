package config

import (
	_ "embed"

	"github.com/vovakirdan/critter-catcher/internal/catch"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default catcher configuration.
func DefaultCatcherConfig() CatcherConfig {
	st := catch.DefaultSettings()
	cfg := CatcherConfig{
		Net: CatcherNet{Size: st.NetSize},
		Level: CatcherLevel{
			Quota:      st.Quota,
			SpawnBase:  st.SpawnBase,
			SpawnStep:  st.SpawnStep,
			Exhaustion: string(st.Exhaustion),
		},
		Speed: CatcherSpeed{
			Base:    st.BaseSpeed,
			Initial: st.SpeedInitial,
			Min:     st.SpeedMin,
			Max:     st.SpeedMax,
			Step:    st.SpeedStep,
			Jitter:  st.Jitter,
		},
		Motion: CatcherMotion{
			WobbleRate: st.Motion.WobbleRate,
			HopRate:    st.Motion.HopRate,
		},
		Display: CatcherDisplay{
			CellWidth:  8,
			CellHeight: 16,
			HUDRows:    2,
		},
		Controls: CatcherControls{
			NetStep:   2,
			HoldTicks: 4,
		},
	}
	for _, cat := range catch.Animals() {
		cfg.Categories = append(cfg.Categories, CategoryConfig{
			ID:        cat.ID,
			Name:      cat.Name,
			Size:      cat.Size,
			Speed:     cat.Speed,
			Points:    cat.Points,
			Wobble:    cat.Behavior.Wobble,
			Hop:       cat.Behavior.Hop,
			HopStride: cat.Behavior.HopStride,
		})
	}
	return cfg
}
