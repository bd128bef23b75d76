package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jszwec/csvutil"
	"github.com/labelprint/backend/internal/domain/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func header() string {
	return strings.Join(customer.Headers(), ",")
}

func TestFileStore_ReadAll_MissingFile(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.csv"), WithLogger(zap.New(core)))

	records := store.ReadAll(context.Background())

	assert.NotNil(t, records)
	assert.Empty(t, records)
	require.Equal(t, 1, logs.FilterMessage("customer file not found, using empty record set").Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.csv"))

	records, err := store.Load(context.Background())

	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Empty(t, records)
}

func TestFileStore_ReadAll_UnreadableFile(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	// A directory cannot be parsed as CSV
	store := NewFileStore(t.TempDir(), WithLogger(zap.New(core)))

	records := store.ReadAll(context.Background())

	assert.Empty(t, records)
	assert.Equal(t, 1, logs.FilterMessage("failed to read customer file, using empty record set").Len())
}

func TestFileStore_Load_EmptyFile(t *testing.T) {
	store := NewFileStore(writeFile(t, ""))

	records, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStore_Load_SkipsBlankRows(t *testing.T) {
	content := header() + "\n" +
		"علی,0912,تهران,111\n" +
		" , ,\t, \n" +
		",,,\n" +
		"مریم,,,\n"
	store := NewFileStore(writeFile(t, content))

	records, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, customer.Record{FullName: "علی", Phone: "0912", Address: "تهران", PostalCode: "111"}, records[0])
	assert.Equal(t, customer.Record{FullName: "مریم"}, records[1])
}

func TestFileStore_Load_HeaderOrderAndShortRows(t *testing.T) {
	content := strings.Join([]string{
		customer.HeaderPostalCode, customer.HeaderFullName, "note", customer.HeaderPhone,
	}, ",") + "\n" +
		"999, سارا ,x,021\n" +
		"888,نیما\n"
	store := NewFileStore(writeFile(t, content))

	records, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, customer.Record{FullName: "سارا", Phone: "021", PostalCode: "999"}, records[0])
	assert.Equal(t, customer.Record{FullName: "نیما", PostalCode: "888"}, records[1])
}

func TestFileStore_Load_InvalidEncoding(t *testing.T) {
	store := NewFileStore(writeFile(t, header()+"\n\xff\xfe,1,2,3\n"))

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFileStore_Load_CancelledContext(t *testing.T) {
	store := NewFileStore(writeFile(t, header()+"\na,b,c,d\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_AppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "database.csv")
	store := NewFileStore(path)
	ctx := context.Background()

	var want customer.RecordSet
	for i := 0; i < 5; i++ {
		rec := customer.NewRecord(
			fmt.Sprintf(" مشتری %d ", i),
			fmt.Sprintf("0912%07d", i),
			fmt.Sprintf("شیراز، کوچه %d, پلاک \"%d\"", i, i),
			fmt.Sprintf("%010d", i),
		)
		require.NoError(t, store.Append(ctx, rec))
		want = append(want, rec)
	}

	got := store.ReadAll(ctx)
	assert.Equal(t, want, got)
}

func TestFileStore_Append_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.csv")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, customer.NewRecord("a", "1", "x", "10")))
	require.NoError(t, store.Append(ctx, customer.NewRecord("b", "2", "y", "20")))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	wantHeader, err := csvutil.Header(customer.Record{}, "csv")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, wantHeader, rows[0])
	assert.Equal(t, customer.Headers(), rows[0])
	assert.Equal(t, []string{"a", "1", "x", "10"}, rows[1])
	assert.Equal(t, []string{"b", "2", "y", "20"}, rows[2])
}

func TestFileStore_Append_PreservesExistingRows(t *testing.T) {
	content := strings.Join([]string{
		customer.HeaderPhone, customer.HeaderFullName, customer.HeaderAddress, customer.HeaderPostalCode,
	}, ",") + "\n0935,قدیمی,کرج,555\n"
	path := writeFile(t, content)
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), customer.NewRecord("جدید", "", "", "")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), content))
	assert.Equal(t, 1, strings.Count(string(data), customer.HeaderPostalCode))
}

func TestFileStore_Append_EmptyExistingFileGetsHeader(t *testing.T) {
	path := writeFile(t, "")
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), customer.NewRecord("a", "b", "c", "d")))

	records := store.ReadAll(context.Background())
	assert.Equal(t, customer.RecordSet{{FullName: "a", Phone: "b", Address: "c", PostalCode: "d"}}, records)
}

func TestFileStore_Append_Failure(t *testing.T) {
	// The backing path is a directory, so opening it for writing fails
	store := NewFileStore(t.TempDir())

	err := store.Append(context.Background(), customer.NewRecord("a", "b", "c", "d"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestFileStore_Append_FollowsExistingHeaderOrder(t *testing.T) {
	content := strings.Join([]string{
		customer.HeaderPostalCode, customer.HeaderAddress, customer.HeaderPhone, customer.HeaderFullName,
	}, ",") + "\n111,Addr1,0911,Ali\n"
	path := writeFile(t, content)
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, customer.NewRecord("Reza", "0912", "Addr2", "222")))

	records := store.ReadAll(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, customer.Record{FullName: "Ali", Phone: "0911", Address: "Addr1", PostalCode: "111"}, records[0])
	assert.Equal(t, customer.Record{FullName: "Reza", Phone: "0912", Address: "Addr2", PostalCode: "222"}, records[1])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content+"222,Addr2,0912,Reza\n", string(data))
}

func TestFileStore_Append_ExtraAndRepeatedColumns(t *testing.T) {
	content := strings.Join([]string{
		"note", customer.HeaderFullName, customer.HeaderPhone, customer.HeaderFullName,
		customer.HeaderAddress, customer.HeaderPostalCode,
	}, ",") + "\n"
	path := writeFile(t, content)
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), customer.NewRecord("Reza", "0912", "Addr2", "222")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content+",Reza,0912,,Addr2,222\n", string(data))
	assert.Equal(t, customer.RecordSet{{FullName: "Reza", Phone: "0912", Address: "Addr2", PostalCode: "222"}},
		store.ReadAll(context.Background()))
}

func TestFileStore_Append_MissingTrailingNewline(t *testing.T) {
	path := writeFile(t, header()+"\nAli,0911,Addr1,111")
	store := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, customer.NewRecord("Reza", "0912", "Addr2", "222")))

	records := store.ReadAll(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, "111", records[0].PostalCode)
	assert.Equal(t, customer.Record{FullName: "Reza", Phone: "0912", Address: "Addr2", PostalCode: "222"}, records[1])
}

func TestFileStore_Append_HeaderWithoutNewline(t *testing.T) {
	path := writeFile(t, "\xEF\xBB\xBF"+header())
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), customer.NewRecord("a", "b", "c", "d")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBF"+header()+"\na,b,c,d\n", string(data))
}

func TestFileStore_Append_BlankLinesOnly(t *testing.T) {
	path := writeFile(t, "\n\n")
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), customer.NewRecord("a", "b", "c", "d")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n\n"+header()+"\na,b,c,d\n", string(data))
}

func TestFileStore_Append_MissingColumn(t *testing.T) {
	content := strings.Join([]string{customer.HeaderFullName, customer.HeaderPhone}, ",") + "\nAli,0911\n"
	path := writeFile(t, content)
	store := NewFileStore(path)

	err := store.Append(context.Background(), customer.NewRecord("Reza", "0912", "Addr2", "222"))

	assert.ErrorIs(t, err, ErrMissingHeader)
	assert.Contains(t, err.Error(), customer.HeaderAddress)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, content, string(data))
}
