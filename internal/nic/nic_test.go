package nic

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "legacy male", raw: "741922757V", want: "197419202757"},
		{name: "legacy male 1986", raw: "861234567V", want: "198612304567"},
		{name: "legacy female", raw: "916980123V", want: "199169800123"},
		{name: "year 2000 boundary", raw: "001001234V", want: "200010001234"},
		{name: "canonical passthrough", raw: "197419202757", want: "197419202757"},
		{name: "X marker", raw: "741922757X", want: "197419202757"},
		{name: "lower case marker", raw: "741922757v", want: "197419202757"},
		{name: "marker-less legacy", raw: "741922757", want: "197419202757"},
		{name: "spaces stripped", raw: " 74 192 2757 V ", want: "197419202757"},
		{name: "spaced canonical", raw: "1974 192 0275 7", want: "197419202757"},
		{name: "day padded", raw: "740010001V", want: "197400100001"},

		{name: "too short", raw: "12345", wantErr: ErrInvalidLength},
		{name: "empty", raw: "", wantErr: ErrInvalidLength},
		{name: "eleven digits", raw: "12345678901", wantErr: ErrInvalidLength},
		{name: "thirteen digits", raw: "1234567890123", wantErr: ErrInvalidLength},
		{name: "twelve with letter", raw: "19741920275A", wantErr: ErrInvalidLength},
		{name: "nine with letter", raw: "74192275A", wantErr: ErrInvalidLength},
		{name: "bad marker", raw: "123456789Z", wantErr: ErrInvalidFormat},
		{name: "digit marker", raw: "1234567890", wantErr: ErrInvalidFormat},
		{name: "letter in digits", raw: "74192A757V", wantErr: ErrInvalidFormat},
		{name: "dash is not stripped", raw: "741922757-V", wantErr: ErrInvalidLength},
		{name: "tab is not stripped", raw: "741922757\tV", wantErr: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_DayRange(t *testing.T) {
	for _, day := range []int{0, 367, 500, 867, 999} {
		t.Run(fmt.Sprintf("reject %03d", day), func(t *testing.T) {
			_, err := Normalize(fmt.Sprintf("80%03d1234V", day))
			assert.ErrorIs(t, err, ErrInvalidDay)
		})
	}
	for _, day := range []int{1, 366, 501, 866} {
		t.Run(fmt.Sprintf("accept %03d", day), func(t *testing.T) {
			got, err := Normalize(fmt.Sprintf("80%03d1234V", day))
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("1980%03d01234", day), got)
		})
	}
}

func TestNormalize_CenturyCutoff(t *testing.T) {
	tests := []struct {
		yy   string
		year string
	}{
		{"00", "2000"},
		{"50", "2050"},
		{"51", "1951"},
		{"99", "1999"},
	}
	for _, tt := range tests {
		t.Run(tt.yy, func(t *testing.T) {
			got, err := Normalize(tt.yy + "1001234V")
			require.NoError(t, err)
			assert.Equal(t, tt.year, got[:4])
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	legacy := []string{"741922757V", "861234567V", "916980123V", "001001234V", "500011110X", "518661239"}

	for _, raw := range legacy {
		first, err := Normalize(raw)
		require.NoError(t, err)

		second, err := Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, first, second, "deterministic for %s", raw)

		assert.Len(t, first, 12)
		assert.True(t, allDigits(first))

		again, err := Normalize(first)
		require.NoError(t, err)
		assert.Equal(t, first, again, "canonical form is a fixed point")
	}
}

func TestDerive(t *testing.T) {
	t.Run("male legacy", func(t *testing.T) {
		info, err := Derive("741922757V")
		require.NoError(t, err)
		assert.Equal(t, Info{BirthYear: 1974, DayOfYear: 192, Sex: SexMale, Canonical: "197419202757"}, info)
	})

	t.Run("female legacy", func(t *testing.T) {
		info, err := Derive("916980123V")
		require.NoError(t, err)
		assert.Equal(t, 1991, info.BirthYear)
		assert.Equal(t, 198, info.DayOfYear)
		assert.Equal(t, SexFemale, info.Sex)
		assert.Equal(t, "199169800123", info.Canonical)
	})

	t.Run("canonical input", func(t *testing.T) {
		info, err := Derive("200086501234")
		require.NoError(t, err)
		assert.Equal(t, 2000, info.BirthYear)
		assert.Equal(t, 365, info.DayOfYear)
		assert.Equal(t, SexFemale, info.Sex)
	})

	t.Run("token 500 is male", func(t *testing.T) {
		info, err := Derive("199050001234")
		require.NoError(t, err)
		assert.Equal(t, SexMale, info.Sex)
		assert.Equal(t, 500, info.DayOfYear)
	})

	t.Run("errors propagate unchanged", func(t *testing.T) {
		_, err := Derive("12345")
		assert.ErrorIs(t, err, ErrInvalidLength)

		_, err = Derive("123456789Z")
		assert.ErrorIs(t, err, ErrInvalidFormat)

		_, err = Derive("803671234V")
		assert.ErrorIs(t, err, ErrInvalidDay)
	})
}

func TestExpand_Defensive(t *testing.T) {
	_, err := expand("12345678")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = expand("A1001234X")
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, err = expand("80A011234")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestInfo_BirthDate(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want time.Time
		ok   bool
	}{
		{"first day", Info{BirthYear: 1990, DayOfYear: 1}, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"mid year", Info{BirthYear: 1974, DayOfYear: 192}, time.Date(1974, 7, 11, 0, 0, 0, 0, time.UTC), true},
		{"leap day 366", Info{BirthYear: 2000, DayOfYear: 366}, time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"366 in common year", Info{BirthYear: 1991, DayOfYear: 366}, time.Time{}, false},
		{"zero day", Info{BirthYear: 1991, DayOfYear: 0}, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.info.BirthDate()
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("741922757V"))
	assert.True(t, Valid("197419202757"))
	assert.False(t, Valid("741922757Q"))
	assert.False(t, Valid(""))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "74 192 275 7V", Format("741922757V"))
	assert.Equal(t, "1974 192 0275 7", Format("197419202757"))
	assert.Equal(t, "1974 192 0275 7", Format("1974 192 0275 7"))
	assert.Equal(t, "12345", Format("12 345"))
	assert.Equal(t, "74 192 275 7V", Format("741922757v"))
	assert.Equal(t, "91 698 012 3X", Format(" 91 698 0123 x"))
	assert.Equal(t, "ABC", Format("a b c"))
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := Normalize("916980123V")
				if err != nil || got != "199169800123" {
					t.Errorf("unexpected result %q, %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
