/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package internal

import (
	"testing"
)

func TestClampInt(t *testing.T) {
	if got := ClampInt(5, 1, 10); got != 5 {
		t.Fatalf("in range: got %v want 5", got)
	}
	if got := ClampInt(-3, 1, 10); got != 1 {
		t.Fatalf("below range: got %v want 1", got)
	}
	if got := ClampInt(42, 1, 10); got != 10 {
		t.Fatalf("above range: got %v want 10", got)
	}
}

func TestClampFloat(t *testing.T) {
	if got := ClampFloat(2.5, 0, 100); got != 2.5 {
		t.Fatalf("in range: got %v want 2.5", got)
	}
	if got := ClampFloat(-1, 0, 100); got != 0 {
		t.Fatalf("below range: got %v want 0", got)
	}
	if got := ClampFloat(150, 0, 100); got != 100 {
		t.Fatalf("above range: got %v want 100", got)
	}
}
