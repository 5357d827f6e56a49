// Package render provides human-readable renderers for the data model.
//
// Sequence rows can be written as an aligned ASCII table, JSON Lines or
// CSV through a common Formatter interface:
//
//	formatter := render.NewASCIIFormatter(os.Stdout)
//	if err := formatter.Format(seq); err != nil {
//	    log.Fatal(err)
//	}
//
// Describe summarizes a whole tree, one line per variable. These
// renderers are for inspection and debugging; the DAP wire encodings are
// out of scope here.
package render
