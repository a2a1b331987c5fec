package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aayushsharma490/viprakarma-sub003/internal/domain"
	"github.com/Aayushsharma490/viprakarma-sub003/internal/ports/usecase"
)

// coreFactory возвращает use case и функцию освобождения ресурсов
type coreFactory func(ctx context.Context) (usecase.IAstroUseCase, func(), error)

const (
	formatText = "text"
	formatJSON = "json"
)

type rootOptions struct {
	format string
	core   coreFactory
}

func newRootCmd(core coreFactory) *cobra.Command {
	opts := &rootOptions{core: core}

	root := &cobra.Command{
		Use:           "jyotish-cli",
		Short:         "Vedic chart, Vimshottari dasha and Ashtakoota matching",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("unknown format %q, expected text or json", opts.format)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.format, "format", formatText, "Output format (text, json)")

	root.AddCommand(
		newChartCmd(opts),
		newDashaCmd(opts),
		newMatchCmd(opts),
	)
	return root
}

// withCore открывает ядро на время одной команды
func (o *rootOptions) withCore(cmd *cobra.Command, fn func(astro usecase.IAstroUseCase) error) error {
	astro, release, err := o.core(cmd.Context())
	if err != nil {
		return err
	}
	if release != nil {
		defer release()
	}
	return fn(astro)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

const birthArgHelp = `Birth is given as DATE T TIME [OFFSET] @ LAT,LON, e.g.
  2006-01-19T09:40+05:30@26.44,74.62
Without an offset local mean time of the longitude is used.`

// parseBirth разбирает "2006-01-02T15:04[:05][±HH:MM]@lat,lon"
func parseBirth(name, raw string) (domain.BirthInput, error) {
	when, where, ok := strings.Cut(raw, "@")
	if !ok {
		return domain.BirthInput{}, fmt.Errorf("birth %q: missing @lat,lon", raw)
	}

	offset := ""
	if n := len(when); n > 6 && (when[n-6] == '+' || when[n-6] == '-') {
		when, offset = when[:n-6], when[n-6:]
	}

	var (
		t   time.Time
		err error
	)
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err = time.Parse(layout, when); err == nil {
			break
		}
	}
	if err != nil {
		return domain.BirthInput{}, fmt.Errorf("birth %q: bad date/time: %w", raw, err)
	}

	latRaw, lonRaw, ok := strings.Cut(where, ",")
	if !ok {
		return domain.BirthInput{}, fmt.Errorf("birth %q: location must be lat,lon", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return domain.BirthInput{}, fmt.Errorf("birth %q: bad latitude: %w", raw, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
	if err != nil {
		return domain.BirthInput{}, fmt.Errorf("birth %q: bad longitude: %w", raw, err)
	}

	return domain.BirthInput{
		Name:           name,
		Year:           t.Year(),
		Month:          int(t.Month()),
		Day:            t.Day(),
		Hour:           t.Hour(),
		Minute:         t.Minute(),
		Second:         t.Second(),
		TimezoneOffset: offset,
		Latitude:       lat,
		Longitude:      lon,
	}, nil
}

// dms форматирует градусы внутри знака как 12°34'
func dms(deg float64) string {
	d := math.Floor(deg)
	m := math.Floor((deg - d) * 60)
	return fmt.Sprintf("%02.0f°%02.0f'", d, m)
}
