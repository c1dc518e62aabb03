package response

import (
	"errors"
	"time"

	"villa-booking/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

// calendarDays renders time.Time sources as YYYY-MM-DD when the target field is a string.
var calendarDays = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errors.New("src type not matching")
				}
				return pricing.FormatDate(t), nil
			},
		},
	},
}

func copyInto(dst, src any) {
	// field sets are fixed at compile time, a failure here is a programming error
	if err := copier.CopyWithOption(dst, src, calendarDays); err != nil {
		panic(err)
	}
}

func formatDates(in []time.Time) []string {
	out := make([]string, len(in))
	for i, d := range in {
		out[i] = pricing.FormatDate(d)
	}
	return out
}
