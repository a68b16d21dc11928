package extractor

import "intent-engine/internal/intent"

// dateRangeStep sets start_date, end_date and, for relative phrases, period.
func dateRangeStep(x *Extractor, in *input, out intent.Params) {
	r, ok := x.dates.ParseRange(in.raw, in.now)
	if !ok {
		return
	}
	set(out, "start_date", intent.Time(r.Start))
	set(out, "end_date", intent.Time(r.End))
	if r.Period != "" {
		set(out, "period", intent.String(r.Period))
	}
}
