package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// Validate checks struct tags and cross-field constraints.
func (c WorldPvP) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%w: %s failed %q (%s)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return errors.Join(errs...)
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	r := c.Rewards
	if sum := r.QualityWeights.Sum(); sum > 1 {
		return fmt.Errorf("%w: quality weights sum %.4f exceeds 1", ErrInvalidConfig, sum)
	}
	if r.XPOffsetMin > r.XPOffsetMax {
		return fmt.Errorf("%w: xp_offset_min %.1f > xp_offset_max %.1f", ErrInvalidConfig, r.XPOffsetMin, r.XPOffsetMax)
	}
	if r.MaxLevelWindowMin > r.MaxLevelWindowMax {
		return fmt.Errorf("%w: max level window [%d, %d] is empty", ErrInvalidConfig, r.MaxLevelWindowMin, r.MaxLevelWindowMax)
	}
	if s := c.Simulation; s.MinLevel > s.MaxLevel {
		return fmt.Errorf("%w: simulation level range [%d, %d] is empty", ErrInvalidConfig, s.MinLevel, s.MaxLevel)
	}
	return nil
}
