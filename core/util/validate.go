package util

import (
	"fmt"
	"strings"

	"github.com/dwrod/fmpsdk/core/logging"
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrInvalidParameter matches every InvalidParameterError through errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports an enumerated parameter outside its allowed set.
type InvalidParameterError struct {
	Parameter string
	Value     string
	Allowed   []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s value: '%s'. Valid options: [%s]", e.Parameter, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ValidateEnum returns the member of allowed that value matches case-insensitively.
// The returned string is the member's own spelling, so "ANNUAL" normalizes to "annual".
func ValidateEnum(value string, allowed []string, name string) (string, error) {
	for _, candidate := range allowed {
		if strings.EqualFold(value, candidate) {
			return candidate, nil
		}
	}
	logging.L().Debug("rejected parameter value",
		zap.String("parameter", name),
		zap.String("value", value),
		zap.Strings("allowed", allowed))
	return "", &InvalidParameterError{
		Parameter: name,
		Value:     value,
		Allowed:   append([]string(nil), allowed...),
	}
}

func ValidatePeriod(value string) (string, error) {
	return ValidateEnum(value, PeriodValues, "period")
}

func ValidateTimeDelta(value string) (string, error) {
	return ValidateEnum(value, TimeDeltaValues, "time_delta")
}

// ValidateTechnicalIndicatorsTimeDelta is ValidateTimeDelta plus "daily".
func ValidateTechnicalIndicatorsTimeDelta(value string) (string, error) {
	return ValidateEnum(value, TechnicalIndicatorsTimeDeltaValues, "time_delta")
}

func ValidateStatisticsType(value string) (string, error) {
	return ValidateEnum(value, StatisticsTypeValues, "statistics_type")
}

func ValidateSeriesType(value string) (string, error) {
	return ValidateEnum(value, SeriesTypeValues, "series_type")
}

func ValidateSector(value string) (string, error) {
	return ValidateEnum(value, SectorValues, "sector")
}

func ValidateIndustry(value string) (string, error) {
	return ValidateEnum(value, IndustryValues, "industry")
}

// ParseFormat validates an output format name. The empty string selects the default.
func ParseFormat(value string) (types.Format, error) {
	if value == "" {
		return types.DefaultFormat, nil
	}
	f, err := ValidateEnum(value, types.FormatValues, "output")
	if err != nil {
		return "", err
	}
	return types.Format(f), nil
}
