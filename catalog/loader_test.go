package catalog_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/glosario"
	"github.com/fwojciec/glosario/catalog"
	"github.com/fwojciec/glosario/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record returns a valid JSON term record.
func record(formal string) string {
	return `{"formal_term":"` + formal + `","colloquial_term":"coloquial","definition":"def","usage_example":"ejemplo"}`
}

// sources returns a fetcher serving the given payloads; other domains are not found.
func sources(payloads map[glosario.Domain]string) *mock.SourceFetcher {
	return &mock.SourceFetcher{
		FetchDomainFn: func(_ context.Context, d glosario.Domain) ([]byte, error) {
			p, ok := payloads[d]
			if !ok {
				return nil, glosario.Errorf(glosario.ENOTFOUND, "%s.json not found", d)
			}
			return []byte(p), nil
		},
	}
}

// allDomains returns a payload with n records for every domain.
func allDomains() map[glosario.Domain]string {
	payloads := make(map[glosario.Domain]string)
	for _, d := range glosario.Domains() {
		payloads[d] = "[" + record(string(d)+"-1") + "," + record(string(d)+"-2") + "]"
	}
	return payloads
}

func formalTerms(terms []glosario.Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.FormalTerm)
	}
	return out
}

func TestLoader_LoadAll(t *testing.T) {
	t.Parallel()

	t.Run("merges every domain in enumeration then source order", func(t *testing.T) {
		t.Parallel()

		loader := &catalog.Loader{Sources: sources(allDomains())}

		c, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		require.Len(t, c.Terms, 14)
		var want []string
		for _, d := range glosario.Domains() {
			want = append(want, string(d)+"-1", string(d)+"-2")
		}
		assert.Equal(t, want, formalTerms(c.Terms))
		assert.Empty(t, c.Failures)
		assert.NotEmpty(t, c.LoadID)
		assert.NotZero(t, c.Fingerprint)
	})

	t.Run("tags every term with its domain", func(t *testing.T) {
		t.Parallel()

		loader := &catalog.Loader{Sources: sources(allDomains())}

		c, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		for _, term := range c.Terms {
			assert.True(t, strings.HasPrefix(term.FormalTerm, string(term.Domain)+"-"), term.FormalTerm)
			assert.NoError(t, term.Validate())
		}
	})

	t.Run("order is independent of completion order", func(t *testing.T) {
		t.Parallel()

		payloads := allDomains()
		delays := map[glosario.Domain]time.Duration{
			glosario.DomainComputing: 40 * time.Millisecond,
			glosario.DomainHealth:    20 * time.Millisecond,
		}
		fetcher := &mock.SourceFetcher{
			FetchDomainFn: func(_ context.Context, d glosario.Domain) ([]byte, error) {
				time.Sleep(delays[d])
				return []byte(payloads[d]), nil
			},
		}
		loader := &catalog.Loader{Sources: fetcher}

		c, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "informatica-1", c.Terms[0].FormalTerm)
		assert.Equal(t, "salud-1", c.Terms[2].FormalTerm)
	})

	t.Run("missing domain is recorded as failed without failing the load", func(t *testing.T) {
		t.Parallel()

		payloads := allDomains()
		delete(payloads, glosario.DomainArts)
		loader := &catalog.Loader{Sources: sources(payloads)}

		c, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, c.Terms, 12)
		assert.Equal(t, []glosario.Domain{glosario.DomainArts}, c.FailedDomains())
		assert.Equal(t, glosario.ENOTFOUND, glosario.ErrorCode(c.Failures[0].Err))
		for _, term := range c.Terms {
			assert.NotEqual(t, glosario.DomainArts, term.Domain)
		}
	})

	t.Run("every domain missing fails with ETOTALFAILURE", func(t *testing.T) {
		t.Parallel()

		loader := &catalog.Loader{Sources: sources(nil)}

		c, err := loader.LoadAll(context.Background())

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Equal(t, glosario.ETOTALFAILURE, glosario.ErrorCode(err))
		assert.Contains(t, glosario.ErrorMessage(err), "7 of 7")
	})

	t.Run("mixed failures are each recorded with their code", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.SourceFetcher{
			FetchDomainFn: func(_ context.Context, d glosario.Domain) ([]byte, error) {
				switch d {
				case glosario.DomainComputing:
					return []byte(`{"formal_term":"no list"}`), nil
				case glosario.DomainHealth:
					return nil, glosario.Errorf(glosario.ETRANSPORT, "connection refused")
				case glosario.DomainArts:
					return []byte(`[{"formal_term":"sin ejemplo","colloquial_term":"x"}]`), nil
				case glosario.DomainHospitality:
					return []byte(`not json`), nil
				case glosario.DomainConstruction:
					return nil, glosario.Errorf(glosario.ESTATUS, "HTTP 500")
				default:
					return []byte("[" + record(string(d)) + "]"), nil
				}
			},
		}
		loader := &catalog.Loader{Sources: fetcher, RetryDelays: []time.Duration{}}

		c, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"industrial", "electromecanica"}, formalTerms(c.Terms))
		codes := make(map[glosario.Domain]string)
		for _, f := range c.Failures {
			codes[f.Domain] = glosario.ErrorCode(f.Err)
		}
		assert.Equal(t, map[glosario.Domain]string{
			glosario.DomainComputing:    glosario.EFORMAT,
			glosario.DomainHealth:       glosario.ETRANSPORT,
			glosario.DomainArts:         glosario.EEMPTY,
			glosario.DomainHospitality:  glosario.EFORMAT,
			glosario.DomainConstruction: glosario.ESTATUS,
		}, codes)
		assert.Equal(t, []glosario.Domain{
			glosario.DomainComputing, glosario.DomainHealth, glosario.DomainArts,
			glosario.DomainHospitality, glosario.DomainConstruction,
		}, c.FailedDomains())
	})

	t.Run("repeated loads do not accumulate", func(t *testing.T) {
		t.Parallel()

		loader := &catalog.Loader{Sources: sources(allDomains())}

		first, err := loader.LoadAll(context.Background())
		require.NoError(t, err)
		second, err := loader.LoadAll(context.Background())
		require.NoError(t, err)

		assert.Len(t, second.Terms, len(first.Terms))
		assert.NotEqual(t, first.LoadID, second.LoadID)
		assert.Equal(t, first.Fingerprint, second.Fingerprint)
	})

	t.Run("fingerprint changes with source content", func(t *testing.T) {
		t.Parallel()

		payloads := allDomains()
		first, err := (&catalog.Loader{Sources: sources(payloads)}).LoadAll(context.Background())
		require.NoError(t, err)

		payloads[glosario.DomainHealth] = "[" + record("nuevo") + "]"
		second, err := (&catalog.Loader{Sources: sources(payloads)}).LoadAll(context.Background())
		require.NoError(t, err)

		assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
	})

	t.Run("restricts loading to configured domains", func(t *testing.T) {
		t.Parallel()

		var fetched atomic.Int64
		inner := sources(allDomains())
		fetcher := &mock.SourceFetcher{
			FetchDomainFn: func(ctx context.Context, d glosario.Domain) ([]byte, error) {
				fetched.Add(1)
				return inner.FetchDomain(ctx, d)
			},
		}
		loader := &catalog.Loader{
			Sources: fetcher,
			Domains: []glosario.Domain{glosario.DomainIndustrial, glosario.DomainHealth},
		}

		c, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), fetched.Load())
		assert.Equal(t, []string{"industrial-1", "industrial-2", "salud-1", "salud-2"}, formalTerms(c.Terms))
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		payloads := allDomains()
		fetcher := &mock.SourceFetcher{
			FetchDomainFn: func(_ context.Context, d glosario.Domain) ([]byte, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return []byte(payloads[d]), nil
			},
		}
		loader := &catalog.Loader{Sources: fetcher, Concurrency: 2}

		_, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("logs failed domains", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		payloads := allDomains()
		delete(payloads, glosario.DomainHealth)
		loader := &catalog.Loader{
			Sources: sources(payloads),
			Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		}

		_, err := loader.LoadAll(context.Background())

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "domain failed to load")
		assert.Contains(t, buf.String(), "domain=salud")
		assert.Contains(t, buf.String(), "code=not_found")
	})
}

func TestLoader_LoadDomain(t *testing.T) {
	t.Parallel()

	t.Run("drops a record missing usage_example", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		payload := `[` + record("uno") + `,{"formal_term":"dos","colloquial_term":"x","definition":"d"},` + record("tres") + `]`
		loader := &catalog.Loader{
			Sources: sources(map[glosario.Domain]string{glosario.DomainArts: payload}),
			Logger:  slog.New(slog.NewTextHandler(&buf, nil)),
		}

		terms, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		require.NoError(t, err)
		assert.Equal(t, []string{"uno", "tres"}, formalTerms(terms))
		assert.Contains(t, buf.String(), "dropped invalid record")
		assert.Contains(t, buf.String(), "index=1")
		assert.Contains(t, buf.String(), "usage_example")
	})

	t.Run("domain whose only record is invalid fails with EEMPTY", func(t *testing.T) {
		t.Parallel()

		payload := `[{"formal_term":"dos","colloquial_term":"x"}]`
		loader := &catalog.Loader{Sources: sources(map[glosario.Domain]string{glosario.DomainArts: payload})}

		_, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		assert.Equal(t, glosario.EEMPTY, glosario.ErrorCode(err))
	})

	t.Run("empty list fails with EEMPTY", func(t *testing.T) {
		t.Parallel()

		loader := &catalog.Loader{Sources: sources(map[glosario.Domain]string{glosario.DomainArts: `[]`})}

		_, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		assert.Equal(t, glosario.EEMPTY, glosario.ErrorCode(err))
	})

	t.Run("non-list payloads fail with EFORMAT", func(t *testing.T) {
		t.Parallel()

		for _, payload := range []string{`{}`, `"text"`, `null`, `42`, `[`} {
			loader := &catalog.Loader{Sources: sources(map[glosario.Domain]string{glosario.DomainArts: payload})}

			_, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

			assert.Equal(t, glosario.EFORMAT, glosario.ErrorCode(err), "payload %s", payload)
		}
	})

	t.Run("preserves definition-less records", func(t *testing.T) {
		t.Parallel()

		payload := `[{"formal_term":"a","colloquial_term":"b","usage_example":"c"}]`
		loader := &catalog.Loader{Sources: sources(map[glosario.Domain]string{glosario.DomainArts: payload})}

		terms, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		require.NoError(t, err)
		require.Len(t, terms, 1)
		assert.Empty(t, terms[0].Definition)
	})

	t.Run("keeps duplicate records", func(t *testing.T) {
		t.Parallel()

		payload := `[` + record("uno") + `,` + record("uno") + `]`
		loader := &catalog.Loader{Sources: sources(map[glosario.Domain]string{glosario.DomainArts: payload})}

		terms, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		require.NoError(t, err)
		assert.Len(t, terms, 2)
	})

	t.Run("rejects unknown domain", func(t *testing.T) {
		t.Parallel()

		loader := &catalog.Loader{Sources: sources(nil)}

		_, err := loader.LoadDomain(context.Background(), "astrologia")

		assert.Equal(t, glosario.EINVALID, glosario.ErrorCode(err))
	})

	t.Run("retries transport failures", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		fetcher := &mock.SourceFetcher{
			FetchDomainFn: func(_ context.Context, _ glosario.Domain) ([]byte, error) {
				if attempts.Add(1) < 3 {
					return nil, glosario.Errorf(glosario.ETRANSPORT, "connection reset")
				}
				return []byte("[" + record("uno") + "]"), nil
			},
		}
		loader := &catalog.Loader{
			Sources:     fetcher,
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		}

		terms, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		require.NoError(t, err)
		assert.Len(t, terms, 1)
		assert.Equal(t, int64(3), attempts.Load())
	})

	t.Run("does not retry missing sources", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int64
		fetcher := &mock.SourceFetcher{
			FetchDomainFn: func(_ context.Context, d glosario.Domain) ([]byte, error) {
				attempts.Add(1)
				return nil, glosario.Errorf(glosario.ENOTFOUND, "%s not found", d)
			},
		}
		loader := &catalog.Loader{
			Sources:     fetcher,
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond},
		}

		_, err := loader.LoadDomain(context.Background(), glosario.DomainArts)

		assert.Equal(t, glosario.ENOTFOUND, glosario.ErrorCode(err))
		assert.Equal(t, int64(1), attempts.Load())
	})
}
