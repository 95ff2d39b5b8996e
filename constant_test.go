package measure

import (
	"errors"
	"sync"
	"testing"
)

func TestNewConstant(t *testing.T) {
	k, err := NewConstant("test", MustParseRat("4"))
	if err != nil {
		t.Fatalf("NewConstant(4) failed: %v", err)
	}
	if got := k.Reciprocal(); got.String() != "1/4" {
		t.Errorf("Reciprocal() = %v, want 1/4", got)
	}
	if got := k.String(); got != "test = 4" {
		t.Errorf("String() = %q, want %q", got, "test = 4")
	}

	_, err = NewConstant("test", Rational{})
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("NewConstant(0) = %v, want %v", err, ErrDivisionByZero)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNewConstant(0) did not panic")
		}
	}()
	MustNewConstant("test", Rational{})
}

func TestConstant_SetValue(t *testing.T) {
	k := MustNewConstant("test", StandardGravity)
	fwd, inv := k.Converter(), k.InverseConverter()

	t.Run("success", func(t *testing.T) {
		tests := []string{"10", "-1/3", "9.81", "196133/20000"}
		for _, s := range tests {
			v := MustParseRat(s)
			if err := k.SetValue(v); err != nil {
				t.Errorf("SetValue(%v) failed: %v", v, err)
				continue
			}
			want, _ := v.Inv()
			if got := k.Value(); !got.Equal(v) {
				t.Errorf("Value() = %v, want %v", got, v)
			}
			if got, _ := inv.Factor(); !got.(Rational).Equal(want) {
				t.Errorf("InverseConverter().Factor() = %v, want %v", got, want)
			}
			// round trip
			y := mustConvert(t, fwd, 1)
			assertSame(t, "round trip", mustConvert(t, inv, y), 1)
		}
	})

	t.Run("error", func(t *testing.T) {
		if err := k.SetValue(MustParseRat("7")); err != nil {
			t.Fatalf("SetValue(7) failed: %v", err)
		}
		err := k.SetValue(Rational{})
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("SetValue(0) = %v, want %v", err, ErrDivisionByZero)
		}
		if got := k.Value(); got.String() != "7" {
			t.Errorf("Value() after failed SetValue = %v, want 7", got)
		}
		if got := k.Reciprocal(); got.String() != "1/7" {
			t.Errorf("Reciprocal() after failed SetValue = %v, want 1/7", got)
		}
	})

	t.Run("reset", func(t *testing.T) {
		k.Reset()
		if got := k.Value(); !got.Equal(k.Default()) {
			t.Errorf("Value() after Reset() = %v, want %v", got, k.Default())
		}
	})
}

func TestConstant_LiveViews(t *testing.T) {
	k := MustNewConstant("test", MustParseRat("2"))
	fwd := k.Converter()
	chain := Chain(NewOffset(MustParseRat("1")), fwd, MustNewMultiplier(MustParseRat("1/2")))
	assertSame(t, "before", mustConvert(t, chain, 1), 2)

	if err := k.SetValue(MustParseRat("10")); err != nil {
		t.Fatalf("SetValue(10) failed: %v", err)
	}
	assertSame(t, "Converter().Convert(1)", mustConvert(t, fwd, 1), 10)
	assertSame(t, "InverseConverter().Convert(10)", mustConvert(t, k.InverseConverter(), 10), 1)
	assertSame(t, "Chain().Convert(1)", mustConvert(t, chain, 1), 10)
	assertSame(t, "Chain().Inverse().Convert(10)", mustConvert(t, chain.Inverse(), 10), 1)
}

func TestConstant_Setter(t *testing.T) {
	k := MustNewConstant("test", MustParseRat("2"))
	s, ok := k.Converter().Setter()
	if !ok {
		t.Fatalf("Converter().Setter() ok = false, want true")
	}
	if _, ok := k.InverseConverter().Setter(); ok {
		t.Errorf("InverseConverter().Setter() ok = true, want false")
	}
	if err := s.SetValue(MustParseRat("5")); err != nil {
		t.Fatalf("SetValue(5) failed: %v", err)
	}
	if got, _ := k.InverseConverter().Factor(); !got.(Rational).Equal(MustParseRat("1/5")) {
		t.Errorf("InverseConverter().Factor() = %v, want 1/5", got)
	}
}

func TestConstant_Concurrent(t *testing.T) {
	k := MustNewConstant("test", MustParseRat("2"))
	fwd, inv := k.Converter(), k.InverseConverter()
	c := fwd.Compose(inv)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(2)
		go func(n int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := k.SetValue(NewRatFromInt64(n)); err != nil {
					t.Errorf("SetValue(%v) failed: %v", n, err)
					return
				}
			}
		}(int64(i))
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f, _ := fwd.Factor()
				if f.(Rational).IsZero() {
					t.Errorf("Factor() = 0")
				}
				got, err := c.Convert(MustParseRat("1/3"))
				if err != nil {
					t.Errorf("Convert() failed: %v", err)
					return
				}
				if !got.(Rational).Equal(MustParseRat("1/3")) {
					t.Errorf("Convert(1/3) = %v, want 1/3", got)
				}
			}
		}()
	}
	wg.Wait()

	v, r := k.Value(), k.Reciprocal()
	if got := v.Mul(r); !got.IsOne() {
		t.Errorf("Value() * Reciprocal() = %v, want 1", got)
	}
}

func TestConstant_OneReadPerConversion(t *testing.T) {
	t.Cleanup(Gravity().Reset)

	c, err := KilogramForce.ConverterTo(PoundForce)
	if err != nil {
		t.Fatalf("ConverterTo() failed: %v", err)
	}
	want := MustParseRat("100000000/45359237")

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		vs := []Rational{MustParseRat("1"), MustParseRat("1000")}
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			if err := Gravity().SetValue(vs[i%2]); err != nil {
				t.Errorf("SetValue(%v) failed: %v", vs[i%2], err)
				return
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		got, err := c.Convert(1)
		if err != nil {
			t.Errorf("Convert(1) failed: %v", err)
			break
		}
		if !got.(Rational).Equal(want) {
			t.Errorf("Convert(1) = %v, want %v", got, want)
			break
		}
	}
	close(done)
	wg.Wait()
}

func TestConstant_Snapshots(t *testing.T) {
	k := MustNewConstant("test", MustParseRat("4"))
	var ks snapshots
	if got := ks.get(k, false); got.String() != "4" {
		t.Errorf("get(false) = %v, want 4", got)
	}
	if err := k.SetValue(MustParseRat("5")); err != nil {
		t.Fatalf("SetValue(5) failed: %v", err)
	}
	if got := ks.get(k, true); got.String() != "1/4" {
		t.Errorf("get(true) after SetValue = %v, want 1/4", got)
	}
	var fresh snapshots
	if got := fresh.get(k, true); got.String() != "1/5" {
		t.Errorf("get(true) = %v, want 1/5", got)
	}
}

func TestGravity(t *testing.T) {
	t.Cleanup(Gravity().Reset)

	if Gravity() != Gravity() {
		t.Errorf("Gravity() returned distinct constants")
	}
	if got := Gravity().Value(); got.String() != "196133/20000" {
		t.Errorf("Gravity().Value() = %v, want 196133/20000", got)
	}
	if !GravityConverter().Equal(GravityConverter()) {
		t.Errorf("GravityConverter() != GravityConverter()")
	}
	if GravityConverter().Equal(InverseGravityConverter()) {
		t.Errorf("GravityConverter() == InverseGravityConverter()")
	}
	if !GravityConverter().Inverse().Equal(InverseGravityConverter()) {
		t.Errorf("GravityConverter().Inverse() != InverseGravityConverter()")
	}

	s, ok := GravityConverter().Setter()
	if !ok {
		t.Fatalf("GravityConverter().Setter() ok = false, want true")
	}
	if err := s.SetValue(MustParseRat("10")); err != nil {
		t.Fatalf("SetValue(10) failed: %v", err)
	}
	assertSame(t, "GravityConverter().Convert(1)", mustConvert(t, GravityConverter(), 1), 10)
	assertSame(t, "InverseGravityConverter().Convert(1)", mustConvert(t, InverseGravityConverter(), 1), MustParseRat("1/10"))
}

func TestLookupConstant(t *testing.T) {
	for _, name := range []string{"gravity", "G", " g0 "} {
		k, err := LookupConstant(name)
		if err != nil {
			t.Errorf("LookupConstant(%q) failed: %v", name, err)
			continue
		}
		if k != Gravity() {
			t.Errorf("LookupConstant(%q) = %v, want %v", name, k, Gravity())
		}
	}
	_, err := LookupConstant("planck")
	if !errors.Is(err, ErrUnknownConstant) {
		t.Errorf("LookupConstant(\"planck\") = %v, want %v", err, ErrUnknownConstant)
	}

	ks := Constants()
	if len(ks) != 1 || ks[0] != Gravity() {
		t.Errorf("Constants() = %v, want [%v]", ks, Gravity())
	}
}
