package audio

import "testing"

func TestMixSumsAlignedPartials(t *testing.T) {
	a := []SamplePaxelInt{1, 2, 3}
	b := []SamplePaxelInt{10, 20, 30}
	out := Mix([][]SamplePaxelInt{a, b}, false)
	want := []SamplePaxelBundleInt{11, 22, 33}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestMixPadsShorterPartialsWithZero(t *testing.T) {
	a := []SamplePaxelInt{1, 2, 3, 4}
	b := []SamplePaxelInt{10}
	out := Mix([][]SamplePaxelInt{a, b}, false)
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
	if out[0] != 11 || out[1] != 2 || out[2] != 3 || out[3] != 4 {
		t.Errorf("unexpected mix result: %v", out)
	}
}

func TestMixAutoNormalizeShiftsByCeilLog2(t *testing.T) {
	partials := make([][]SamplePaxelInt, 5)
	for i := range partials {
		partials[i] = []SamplePaxelInt{MaxSamplePaxelInt}
	}
	out := Mix(partials, true)
	// ceil(log2(5)) == 3, so each partial contributes MaxSamplePaxelInt>>3.
	want := SamplePaxelBundleInt(MaxSamplePaxelInt>>3) * 5
	if out[0] != want {
		t.Errorf("out[0] = %d, want %d", out[0], want)
	}
}

func TestMixEmptyInputReturnsNil(t *testing.T) {
	if out := Mix(nil, false); out != nil {
		t.Errorf("Mix(nil, false) = %v, want nil", out)
	}
}
