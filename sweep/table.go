package sweep

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteTable writes one aligned row per result.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "alpha0\tsigma0\trepeat\tmean time\tmean score\tmin\tmax\tstddev\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%d\t%v\t%.4f\t%.4f\t%.4f\t%.4f\t\n",
			r.Config.Alpha0, r.Config.Sigma0, len(r.Trials),
			r.MeanDuration.Round(time.Microsecond), r.MeanScore, r.MinScore, r.MaxScore, r.StdDevScore)
	}
	return tw.Flush()
}
