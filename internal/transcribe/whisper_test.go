package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestWhisperTranscribe(t *testing.T) {
	var gotModel, gotLang, gotFormat string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotModel = r.FormValue("model")
		gotLang = r.FormValue("language")
		gotFormat = r.FormValue("response_format")

		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("form file: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"até logo","language":"portuguese"}`))
	}))
	defer srv.Close()

	client := NewWhisperClient(srv.URL, "Systran/faster-whisper-small", 5*time.Second)

	resp, err := client.Transcribe(context.Background(), []byte("fake-audio"), "clip.wav", Opts{Language: "por"})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if resp.Text != "até logo" {
		t.Errorf("Text = %q, want %q", resp.Text, "até logo")
	}
	if gotModel != "Systran/faster-whisper-small" {
		t.Errorf("model = %q", gotModel)
	}
	if gotLang != "por" {
		t.Errorf("language = %q, want por", gotLang)
	}
	if gotFormat != "json" {
		t.Errorf("response_format = %q, want json", gotFormat)
	}
}

func TestWhisperTranscribe_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model load failed"))
	}))
	defer srv.Close()

	client := NewWhisperClient(srv.URL, "small", 5*time.Second)

	_, err := client.Transcribe(context.Background(), []byte("x"), "a.wav", Opts{})
	if err == nil {
		t.Fatal("Transcribe succeeded, want error")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("err = %v, want status 500 mention", err)
	}
}

func TestWhisperTranscribe_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewWhisperClient(srv.URL, "small", 5*time.Second)

	_, err := client.Transcribe(context.Background(), []byte("x"), "a.wav", Opts{})
	if err == nil {
		t.Fatal("Transcribe succeeded on malformed response, want error")
	}
}
