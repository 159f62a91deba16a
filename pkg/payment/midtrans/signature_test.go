package midtrans

import "testing"

func TestComputeSignature(t *testing.T) {
	got := ComputeSignature("order-1", "200", "10000.00", "SB-Mid-server-testkey")
	want := "424f88cdf8199c3bf4ddc7a37f8c005f01bb05908cf78d53c1cc3a7b222a3604a6133156f8a669d594d1d894ca7ab924025b986f4ff0955d6435492b9a9176d5"
	if got != want {
		t.Errorf("ComputeSignature() = %s, want %s", got, want)
	}
}

func TestValidSignature(t *testing.T) {
	orderId := "order-1"
	statusCode := "200"
	grossAmount := "10000.00"
	serverKey := "SB-Mid-server-testkey"
	valid := ComputeSignature(orderId, statusCode, grossAmount, serverKey)

	tests := []struct {
		name         string
		signatureKey string
		want         bool
	}{
		{"matching digest", valid, true},
		{"tampered digest", valid[:len(valid)-1] + "0", false},
		{"empty digest", "", false},
		{"digest for a different amount", ComputeSignature(orderId, statusCode, "20000.00", serverKey), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidSignature(orderId, statusCode, grossAmount, serverKey, tt.signatureKey)
			if got != tt.want {
				t.Errorf("ValidSignature() = %v, want %v", got, tt.want)
			}
		})
	}
}
