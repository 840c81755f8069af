package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphere(t *testing.T) {
	normals := []struct {
		name   string
		normal Vec3
	}{
		{"up", NewVec3(0, 1, 0)},
		{"down", NewVec3(0, -1, 0)},
		{"x axis", NewVec3(1, 0, 0)},
		{"z axis", NewVec3(0, 0, -1)},
		{"oblique", NewVec3(1, 2, -3).Normalize()},
	}

	const samples = 20000
	for _, tt := range normals {
		t.Run(tt.name, func(t *testing.T) {
			random := rand.New(rand.NewSource(42))
			sumCos := 0.0

			for i := 0; i < samples; i++ {
				dir := SampleCosineHemisphere(random, tt.normal)
				if math.Abs(dir.Length()-1) > 1e-9 {
					t.Fatalf("Sample %d not unit length: %v", i, dir)
				}
				cos := dir.Dot(tt.normal)
				if cos < -1e-12 {
					t.Fatalf("Sample %d below the surface: cos = %f", i, cos)
				}
				sumCos += cos
			}

			// E[cosθ] for a cosθ/π density is 2/3
			mean := sumCos / samples
			if math.Abs(mean-2.0/3.0) > 0.01 {
				t.Errorf("Expected mean cosθ about 0.667, got %f", mean)
			}
		})
	}
}

func TestSampleCosineHemisphere_Deterministic(t *testing.T) {
	normal := NewVec3(0, 0, 1)
	a := SampleCosineHemisphere(rand.New(rand.NewSource(7)), normal)
	b := SampleCosineHemisphere(rand.New(rand.NewSource(7)), normal)
	if a != b {
		t.Errorf("Same seed gave different samples: %v vs %v", a, b)
	}
}
