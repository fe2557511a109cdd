// Package chartfile reads text chart files into decoded records.
//
// It handles everything the decoding core leaves to its callers: opening
// files, decompression (gzip, bzip2, xz, zstd), splitting lines on a fixed
// delimiter and dispatching each line to the decoder named by its tag.
//
// Usage:
//
//	chart, err := chartfile.ReadFile(ctx, "aqu20240105.txt.gz", chartfile.NewOptions())
//	if err != nil {
//		return err
//	}
//	for _, race := range chart.Races {
//		fmt.Println(race.RaceNumber, race.FinalTime)
//	}
package chartfile
