package verdict

import "testing"

func TestClampBounds(t *testing.T) {
	cases := map[int]int{
		-5:  0,
		0:   0,
		42:  42,
		100: 100,
		260: 100,
	}
	for in, want := range cases {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestURLBandsClassify(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, LevelLow},
		{25, LevelLow},
		{26, LevelMedium},
		{50, LevelMedium},
		{51, LevelHigh},
		{75, LevelHigh},
		{76, LevelCritical},
		{100, LevelCritical},
	}
	for _, c := range cases {
		if got := URLBands.Classify(c.score); got != c.want {
			t.Errorf("URLBands.Classify(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestTextBandsClassify(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, LevelLow},
		{24, LevelLow},
		{30, LevelLow},
		{31, LevelMedium},
		{50, LevelMedium},
		{51, LevelHigh},
		{70, LevelHigh},
		{71, LevelCritical},
	}
	for _, c := range cases {
		if got := TextBands.Classify(c.score); got != c.want {
			t.Errorf("TextBands.Classify(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

// Every score inside one band must map to the same level.
func TestClassifyConstantWithinBand(t *testing.T) {
	for _, b := range []Bands{URLBands, TextBands} {
		prev := b.Classify(0)
		changes := 0
		for s := 1; s <= 100; s++ {
			l := b.Classify(s)
			if l != prev {
				changes++
				prev = l
			}
		}
		if changes != 3 {
			t.Errorf("bands %+v: expected exactly 3 level transitions over 0..100, got %d", b, changes)
		}
	}
}
