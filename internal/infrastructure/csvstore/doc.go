// Package csvstore persists customer records in a comma-delimited UTF-8 file
// with a header row.
//
// Reads are header-mapped: columns are matched by name, short rows get empty
// fields, and rows that are blank after trimming are skipped. ReadAll never
// fails; a missing or unreadable file yields an empty record set and a log
// entry. Append writes the header only when the file is new or empty.
//
//	store := csvstore.NewFileStore("database.csv", csvstore.WithLogger(log))
//	if err := store.Append(ctx, customer.NewRecord(name, phone, addr, postal)); err != nil {
//	    return err
//	}
//	records := store.ReadAll(ctx)
package csvstore
