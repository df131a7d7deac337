package httpd

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/uhppoted/uhppoted-app-metadata/keywords"
	"github.com/uhppoted/uhppoted-app-metadata/metadata"
)

//go:embed html
var HTML embed.FS

// Archive persists a submitted metadata record.
type Archive interface {
	Save(context.Context, *metadata.Record) error
}

// Extractor returns up to max keywords from a text.
type Extractor interface {
	Extract(text string, max int) []string
}

type Options struct {
	MaxKeywords int
	Rate        float64
	Burst       int
	Debug       bool
}

type Server struct {
	archive   Archive
	extractor Extractor
	max       int
	limiter   *rate.Limiter
	page      *template.Template
	debug     bool
	now       func() time.Time
}

type request struct {
	Resumen string `json:"resumen"`
	Summary string `json:"summary"`
	Max     int    `json:"max"`
	HTML    bool   `json:"html"`
}

type response struct {
	PalabrasClave string   `json:"palabras_clave"`
	Keywords      []string `json:"keywords"`
}

const maxRequestSize = 1 << 20

func New(archive Archive, extractor Extractor, options Options) (*Server, error) {
	page, err := template.New("index.html").ParseFS(HTML, "html/index.html")
	if err != nil {
		return nil, err
	}

	s := Server{
		archive:   archive,
		extractor: extractor,
		max:       options.MaxKeywords,
		page:      page,
		debug:     options.Debug,
		now:       time.Now,
	}

	if s.max <= 0 {
		s.max = keywords.DefaultMaxKeywords
	}

	if options.Rate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(options.Rate), options.Burst)
	}

	return &s, nil
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.index)
	mux.HandleFunc("/generar_palabras_clave", s.keywords)
	mux.HandleFunc("/keywords", s.keywords)

	return mux
}

// Run serves HTTP requests on the address until the context is cancelled.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		infof("listening on %v", address)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}

	return <-errs
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		var b strings.Builder
		if err := s.page.Execute(&b, map[string]any{"max": s.max}); err != nil {
			warnf("%v", err)
			http.Error(w, "Error formatting page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(b.String()))

	case http.MethodPost:
		s.submit(w, r)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request too large", http.StatusRequestEntityTooLarge)
		} else {
			http.Error(w, fmt.Sprintf("Invalid form (%v)", err), http.StatusBadRequest)
		}
		return
	}

	record, err := metadata.FromForm(r.PostForm, s.now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.debug {
		debugf("%v  submitted '%v'", record.ID, record.Title)
	}

	if err := s.archive.Save(r.Context(), record); err != nil {
		msg := fmt.Sprintf("Error al guardar en Google Sheets o en archivo TXT: %v", err)

		warnf("%s", msg)
		http.Error(w, msg, http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) keywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		reply(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	if s.limiter != nil && !s.limiter.Allow() {
		reply(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	list, err := s.extract(r)

	var tooLarge *http.MaxBytesError
	var missing *MissingInputError
	var failed *ExtractionError

	switch {
	case errors.As(err, &tooLarge):
		reply(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Request too large"})

	case errors.As(err, &missing):
		reply(w, http.StatusBadRequest, map[string]string{"error": err.Error()})

	case errors.As(err, &failed):
		warnf("keyword extraction failed (%v)", failed.Err)
		reply(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})

	case err != nil:
		reply(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})

	default:
		if list == nil {
			list = []string{}
		}

		reply(w, http.StatusOK, response{
			PalabrasClave: keywords.Join(list),
			Keywords:      list,
		})
	}
}

func (s *Server) extract(r *http.Request) (list []string, err error) {
	var rq request

	defer func() {
		if v := recover(); v != nil {
			list = nil
			err = &ExtractionError{Err: fmt.Errorf("%v", v)}
		}
	}()

	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("Invalid request (%w)", err)}
	}

	text := rq.Resumen
	if strings.TrimSpace(text) == "" {
		text = rq.Summary
	}

	if strings.TrimSpace(text) == "" {
		return nil, &MissingInputError{}
	}

	max := s.max
	if rq.Max > 0 {
		max = rq.Max
	}

	if rq.HTML {
		text = keywords.Plaintext(text)
	}

	return s.extractor.Extract(text, max), nil
}

func reply(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(b)
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
