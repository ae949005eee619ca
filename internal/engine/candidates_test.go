package engine

import "testing"

func TestSearchRadiusTable(t *testing.T) {
	cases := []struct {
		phase, area int
		want        int
	}{
		{10, 100, 5},
		{10, 6000, 3},
		{50, 100, 4},
		{50, 6000, 2},
		{90, 100, 3},
		{90, 6000, 2},
	}
	for _, c := range cases {
		if got := SearchRadius(c.phase, c.area); got != c.want {
			t.Errorf("SearchRadius(%d,%d) = %d, want %d", c.phase, c.area, got, c.want)
		}
	}
}

func TestProbeOffsetsSize(t *testing.T) {
	for _, r := range []int{0, 2, 5} {
		got := ProbeOffsets(r)
		want := (2*r + 1) * (2*r + 1)
		if len(got) != want {
			t.Errorf("ProbeOffsets(%d) has %d entries, want %d", r, len(got), want)
		}
	}
}

func TestSampleLeavesSmallListsUntouched(t *testing.T) {
	cells := make([]Pos, 50)
	got := Sample(cells, 9000)
	if len(got) != 50 {
		t.Errorf("Sample kept %d of 50 cells under the 100-cell threshold", len(got))
	}
}

func TestSampleSkipsOnSmallBoards(t *testing.T) {
	cells := make([]Pos, 200)
	got := Sample(cells, 4000)
	if len(got) != 200 {
		t.Errorf("Sample sub-sampled a small-board (area<=5000) frontier list")
	}
}

func TestSampleTakesEveryThirdOnLargeBoards(t *testing.T) {
	cells := make([]Pos, 150)
	for i := range cells {
		cells[i] = Pos{Y: i, X: 0}
	}
	got := Sample(cells, 9000)
	if len(got) != 50 {
		t.Fatalf("Sample returned %d cells, want 50 (every 3rd of 150)", len(got))
	}
	if got[0] != (Pos{0, 0}) || got[1] != (Pos{3, 0}) {
		t.Errorf("Sample = %v..., want stride-3 starting at index 0", got[:2])
	}
}

func TestExpansionSeedsRequireTwoEmptyNeighbours(t *testing.T) {
	// Opponent cell at (1,2) surrounded by open space: every empty
	// neighbour of the flood should qualify as a seed.
	b := parseBoard(splitRows(".....|..$..|....."))
	seeds := ExpansionSeeds(b, p1Roles)
	if len(seeds) == 0 {
		t.Fatal("expected at least one expansion seed in open space")
	}
}

func TestExpansionSeedsBoundedAt100(t *testing.T) {
	rows := make([]string, 60)
	for i := range rows {
		row := make([]byte, 60)
		for j := range row {
			row[j] = '.'
		}
		rows[i] = string(row)
	}
	b := parseBoard(rows)
	b.Rows[30][30] = '$'
	seeds := ExpansionSeeds(b, p1Roles)
	// Bounded flood: can't possibly exceed the ~100-cell visited cap.
	if len(seeds) > 100 {
		t.Errorf("ExpansionSeeds returned %d seeds, expected the flood to stay bounded near 100", len(seeds))
	}
}

func TestFallbackSweepStride(t *testing.T) {
	b := &BoardSnapshot{H: 3, W: 3}
	got := FallbackSweep(b)
	if len(got) != 9 {
		t.Fatalf("small board fallback sweep has %d anchors, want 9 (stride 1)", len(got))
	}

	large := &BoardSnapshot{H: 80, W: 80}
	got = FallbackSweep(large)
	// stride 2 over 80x80 -> 40*40 anchors
	if len(got) != 1600 {
		t.Fatalf("large board fallback sweep has %d anchors, want 1600 (stride 2)", len(got))
	}
}
