package load

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/chartkit"
	"github.com/midbel/slices"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

const (
	TypeNumber = "number"
	TypeTime   = "time"
	TypeString = "string"
)

// Limit keeps Count rows starting at Offset. A negative offset counts from
// the end of the file.
type Limit struct {
	Offset int
	Count  int
}

func applyLimit[T any](list []T, lim Limit) []T {
	z := len(list)
	if lim.Offset < 0 {
		lim.Offset = z + lim.Offset
	}
	if lim.Offset > 0 && lim.Offset < z {
		list = list[lim.Offset:]
	}
	if lim.Count > 0 && lim.Count < len(list) {
		list = list[:lim.Count]
	}
	return list
}

// File describes where the data of a series comes from. The first row is a
// header and is skipped.
type File struct {
	Path  string
	Ident string
	Type  string
	X     int
	Y     Selector
	Comma rune
	Limit
}

func (f File) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f File) selector() Selector {
	if f.Y == nil {
		return SelectSingle(1)
	}
	return f.Y
}

type Loader struct {
	logger l.Wrapper
	client *http.Client
}

func NewLoader(logger l.Wrapper) *Loader {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Loader{
		logger: logger.WithFields(l.StringField(l.ClsKey, "Loader")),
		client: http.DefaultClient,
	}
}

// Load reads the file as a series of the given type: number and time give an
// ordered series, string a categorized one.
func (d *Loader) Load(ctx context.Context, f File) (chartkit.Source, error) {
	switch f.Type {
	case "", TypeNumber:
		return d.Numbers(ctx, f)
	case TypeTime:
		return d.Times(ctx, f)
	case TypeString:
		return d.Categories(ctx, f)
	default:
		return nil, fmt.Errorf("%s: %w", f.Type, chartkit.ErrKind)
	}
}

func (d *Loader) Numbers(ctx context.Context, f File) (chartkit.Series[chartkit.Point[float64, float64]], error) {
	var zero chartkit.Series[chartkit.Point[float64, float64]]
	if f.selector().Width() != 1 {
		return zero, fmt.Errorf("%s: %w", f.Path, ErrWidth)
	}
	list, err := loadFile(ctx, d, f, false, getNumberFunc(f.X, f.selector()))
	if err != nil {
		return zero, err
	}
	return chartkit.Ordered(list...), nil
}

func (d *Loader) Times(ctx context.Context, f File) (chartkit.Series[chartkit.Point[time.Time, float64]], error) {
	var zero chartkit.Series[chartkit.Point[time.Time, float64]]
	if f.selector().Width() != 1 {
		return zero, fmt.Errorf("%s: %w", f.Path, ErrWidth)
	}
	list, err := loadFile(ctx, d, f, false, getTimeFunc(f.X, f.selector()))
	if err != nil {
		return zero, err
	}
	return chartkit.Ordered(list...), nil
}

func (d *Loader) Categories(ctx context.Context, f File) (chartkit.Series[chartkit.Category[string, float64]], error) {
	var zero chartkit.Series[chartkit.Category[string, float64]]
	list, err := loadFile(ctx, d, f, true, getCategoryFunc(f.X, f.selector()))
	if err != nil {
		return zero, err
	}
	return chartkit.Categorized(list...), nil
}

// loadFile reads the points of f. Rows with a missing value are kept as
// invalid data when keep is set, otherwise they are skipped.
func loadFile[P chartkit.Datum](ctx context.Context, d *Loader, f File, keep bool, get getFunc[P]) ([]P, error) {
	logger := d.logger.WithFields(l.StringField("file", f.Path))

	r, err := d.readFrom(ctx, f.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	list, err := readPoints(r, f.Comma, f.selector(), keep, get, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	list = applyLimit(list, f.Limit)
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", f.Path, chartkit.ErrEmpty)
	}
	logger.WithFields(l.IntField("rows", len(list))).Debug("file loaded")
	return list, nil
}

func (d *Loader) readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := d.client.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, fmt.Errorf("%s: request does not end with success result code (%d)", location, res.StatusCode)
		}
		return res.Body, nil
	case "", "file":
		return os.Open(u.Path)
	default:
		return nil, fmt.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

type getFunc[P chartkit.Datum] func([]string) (P, error)

func readPoints[P chartkit.Datum](r io.Reader, comma rune, sel Selector, keep bool, get getFunc[P], logger l.Wrapper) ([]P, error) {
	var (
		rs   = csv.NewReader(r)
		list []P
		line = 1
	)
	if comma != 0 {
		rs.Comma = comma
	}
	rs.FieldsPerRecord = -1
	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if err := checkColumns(header, sel); err != nil {
		return nil, err
	}
	for {
		line++
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		pt, err := get(row)
		if errors.Is(err, ErrMissing) {
			logger.WithFields(l.IntField("line", line), l.ErrorField(err)).Debug("missing value")
			if !keep {
				continue
			}
			err = nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		list = append(list, pt)
	}
	return list, nil
}

func getNumberFunc(x int, y Selector) getFunc[chartkit.Point[float64, float64]] {
	get := func(row []string) (chartkit.Point[float64, float64], error) {
		invalid := chartkit.InvalidPoint[float64, float64]()
		px, err := cellAt(row, x)
		if err != nil {
			return invalid, err
		}
		values, err := y.Select(row)
		if err != nil {
			return invalid, err
		}
		return chartkit.NumberPoint(px, slices.Fst(values)), nil
	}
	return get
}

func getTimeFunc(x int, y Selector) getFunc[chartkit.Point[time.Time, float64]] {
	get := func(row []string) (chartkit.Point[time.Time, float64], error) {
		invalid := chartkit.InvalidPoint[time.Time, float64]()
		if x < 0 || x >= len(row) {
			return invalid, fmt.Errorf("column %d: %w", x, ErrIndex)
		}
		str := strings.TrimSpace(row[x])
		if str == "" {
			return invalid, fmt.Errorf("column %d: %w", x, ErrMissing)
		}
		px, err := cast.ToTimeE(str)
		if err != nil {
			return invalid, err
		}
		values, err := y.Select(row)
		if err != nil {
			return invalid, err
		}
		return chartkit.TimePoint(px, slices.Fst(values)), nil
	}
	return get
}

// getCategoryFunc sums the selected values when more than one column is
// given.
func getCategoryFunc(x int, y Selector) getFunc[chartkit.Category[string, float64]] {
	get := func(row []string) (chartkit.Category[string, float64], error) {
		invalid := chartkit.InvalidCategory[string, float64]()
		if x < 0 || x >= len(row) {
			return invalid, fmt.Errorf("column %d: %w", x, ErrIndex)
		}
		id := strings.TrimSpace(row[x])
		values, err := y.Select(row)
		if err != nil {
			if errors.Is(err, ErrMissing) {
				invalid.ID = id
			}
			return invalid, err
		}
		var total float64
		for _, v := range values {
			total += v
		}
		return chartkit.CategoryPoint(id, total), nil
	}
	return get
}
