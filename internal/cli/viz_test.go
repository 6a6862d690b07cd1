package cli

import "testing"

func TestSampleTreeShape(t *testing.T) {
	tree, err := sampleTree()
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 5 {
		t.Fatalf("sample tree stores %d circles, want 5", tree.Len())
	}
	root := tree.Nodes()[0]
	if root.IsLeaf() {
		t.Fatal("sample tree did not split")
	}
	if len(root.Circles()) != 1 {
		t.Fatalf("root parks %d circles, want the straddler only", len(root.Circles()))
	}
	if !root.Circles()[0].MultiQuadrant() {
		t.Fatal("parked circle not marked multi-quadrant")
	}
}
