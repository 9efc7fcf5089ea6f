package dtos

import (
	"encoding/json"
	"testing"
)

func TestFlightCountUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    FlightCount
		wantErr bool
	}{
		{`3`, 3, false},
		{`"4"`, 4, false},
		{`""`, 0, false},
		{`"  "`, 0, false},
		{`null`, 0, false},
		{`2.2`, 3, false},
		{`"-1"`, -1, false},
		{`"abc"`, 0, true},
		{`3e18`, 0, true},
		{`"-9999999999"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got struct {
				N FlightCount `json:"n"`
			}
			err := json.Unmarshal([]byte(`{"n":`+tt.in+`}`), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.N != tt.want {
				t.Errorf("got %d, want %d", got.N, tt.want)
			}
		})
	}
}
