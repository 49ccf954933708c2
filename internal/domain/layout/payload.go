package layout

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/plotwise-inc/plotwise/internal/domain/inventory"
)

// PlotLayout is the snapshot form of one plot inside a configuration payload.
type PlotLayout struct {
	PlotNumber  string  `json:"plot_number" validate:"required,max=50"`
	Area        float64 `json:"area" validate:"required,gt=0"`
	Price       string  `json:"price"`
	Status      string  `json:"status" validate:"required,plotstatus"`
	Description string  `json:"description"`
}

// BlockLayout is the snapshot form of one block and its plots.
type BlockLayout struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Description string       `json:"description"`
	Plots       []PlotLayout `json:"plots" validate:"dive"`
}

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("plotstatus", func(fl validator.FieldLevel) bool {
		return inventory.PlotStatus(fl.Field().String()).IsValid()
	})
	return v
}

// ValidatePayload checks a configuration payload before it is allowed to
// drive any destructive apply. It enforces field-level validity plus the
// case-insensitive uniqueness rules of the live inventory: block names within
// the payload and plot numbers within each block.
func ValidatePayload(blocks []BlockLayout) error {
	seenNames := make(map[string]struct{}, len(blocks))

	for i, block := range blocks {
		if err := payloadValidator.Struct(block); err != nil {
			return fmt.Errorf("block %d (%s): %w", i, block.Name, err)
		}

		nameKey := strings.ToLower(strings.TrimSpace(block.Name))
		if _, dup := seenNames[nameKey]; dup {
			return fmt.Errorf("duplicate block name in payload: %s", block.Name)
		}
		seenNames[nameKey] = struct{}{}

		seenNumbers := make(map[string]struct{}, len(block.Plots))
		for j, plot := range block.Plots {
			numberKey := strings.ToLower(strings.TrimSpace(plot.PlotNumber))
			if numberKey == "" {
				return fmt.Errorf("block %s plot %d: plot number is required", block.Name, j)
			}
			if _, dup := seenNumbers[numberKey]; dup {
				return fmt.Errorf("duplicate plot number %s in block %s", plot.PlotNumber, block.Name)
			}
			seenNumbers[numberKey] = struct{}{}
		}
	}

	return nil
}
