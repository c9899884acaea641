package reservation

import (
	"fmt"
	"math/rand/v2"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/pkg/clock"
	"donor-booking/internal/pkg/errs"
)

const maxCodeAttempts = 100

var ErrCodeSpaceExhausted = errs.New("could not generate a unique confirmation code")

type CodeGenerator interface {
	Generate(weekday calendar.Weekday, category calendar.Category) ConfirmationCode
}

// RandomCodeGenerator produces T-<Wkd>-<category>-<1000..9999>.
type RandomCodeGenerator struct{}

func (RandomCodeGenerator) Generate(weekday calendar.Weekday, category calendar.Category) ConfirmationCode {
	return ConfirmationCode(fmt.Sprintf("T-%s-%s-%d", weekday.Short(), category, 1000+rand.IntN(9000)))
}

type Factory struct {
	Clock clock.Clock
	Codes CodeGenerator
}

func NewFactory(clock clock.Clock, codes CodeGenerator) *Factory {
	if codes == nil {
		codes = RandomCodeGenerator{}
	}
	return &Factory{
		Clock: clock,
		Codes: codes,
	}
}

// CreateReservation draws codes until taken reports false. The caller holds
// whatever lock makes taken consistent with the insertion that follows.
func (f *Factory) CreateReservation(
	date Date,
	timeOfDay string,
	category calendar.Category,
	requesterID int64,
	taken func(ConfirmationCode) bool,
) (*Reservation, error) {
	weekday := date.Weekday()
	for range maxCodeAttempts {
		code := f.Codes.Generate(weekday, category)
		if taken != nil && taken(code) {
			continue
		}
		return ReconstructReservation(code, date, timeOfDay, category, requesterID, f.Clock.Now()), nil
	}
	return nil, ErrCodeSpaceExhausted
}
