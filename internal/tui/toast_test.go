package tui

import "testing"

func TestToastQueue(t *testing.T) {
	queue := NewToastQueue()
	queue.Push(Toast{Message: "first"})
	queue.Push(Toast{Message: "second", IsError: true})
	if queue.Len() != 2 {
		t.Fatalf("expected 2 toasts, got %d", queue.Len())
	}

	if toast, ok := queue.Peek(); !ok || toast.Message != "first" {
		t.Fatalf("unexpected peek: %+v", toast)
	}
	if toast, _ := queue.Pop(); toast.Message != "first" {
		t.Fatalf("expected first, got %q", toast.Message)
	}
	if toast, _ := queue.Pop(); !toast.IsError {
		t.Fatal("expected error toast")
	}
	if _, ok := queue.Pop(); ok {
		t.Fatal("expected empty queue")
	}
}
