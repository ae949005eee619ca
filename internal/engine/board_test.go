package engine

import (
	"reflect"
	"testing"
)

func TestCollectCellsRowMajor(t *testing.T) {
	b := parseBoard(splitRows(".@.|.a.|..."))
	got := CollectCells(b, p1Roles.Our, p1Roles.OurTerritory)
	want := []Pos{{0, 1}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectCells = %v, want %v", got, want)
	}
}

func TestCentroidEmpty(t *testing.T) {
	if got := Centroid(nil); got != (Pos{0, 0}) {
		t.Errorf("Centroid(nil) = %v, want (0,0)", got)
	}
}

func TestCentroidMean(t *testing.T) {
	pts := []Pos{{0, 0}, {2, 4}}
	if got := Centroid(pts); got != (Pos{1, 2}) {
		t.Errorf("Centroid = %v, want (1,2)", got)
	}
}

func TestPhase(t *testing.T) {
	b := &BoardSnapshot{H: 10, W: 10}
	if got := Phase(b, 5, 5); got != 10 {
		t.Errorf("Phase = %d, want 10", got)
	}
	if got := Phase(b, 0, 0); got != 0 {
		t.Errorf("Phase = %d, want 0", got)
	}
}

func TestFrontierOrderingByOpponentAdjacency(t *testing.T) {
	// Row 1: our cells at (1,1) and (1,3). (1,1) touches opp at (1,0)
	// on one side and empty on the other three -> opp_adj=1,empty_adj=3.
	// (1,3) touches only empty cells -> opp_adj=0, empty_adj>=1.
	b := parseBoard(splitRows(".....|$a.a.|....."))
	our := CollectCells(b, p1Roles.Our, p1Roles.OurTerritory)
	got := Frontier(b, our, p1Roles.Opp, p1Roles.OppTerritory)
	if len(got) != 2 {
		t.Fatalf("Frontier returned %d cells, want 2: %v", len(got), got)
	}
	if got[0] != (Pos{1, 1}) {
		t.Errorf("Frontier[0] = %v, want the opponent-adjacent cell (1,1)", got[0])
	}
}

func TestFrontierExcludesEnclosedCells(t *testing.T) {
	// A territory cell with no empty 4-neighbour never enters the frontier.
	b := parseBoard(splitRows("aaa|aaa|aaa"))
	our := CollectCells(b, p1Roles.Our, p1Roles.OurTerritory)
	got := Frontier(b, our, p1Roles.Opp, p1Roles.OppTerritory)
	if len(got) != 0 {
		t.Errorf("Frontier = %v, want empty (fully enclosed block)", got)
	}
}
