package testsupport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// ReceivedFile is one "files" part as seen by the fake endpoint
type ReceivedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is one POST as seen by the fake endpoint
type Submission struct {
	ContentType string
	Email       string
	Emails      []string
	Files       []ReceivedFile
}

// Receiver is a gin-backed stand-in for the upload endpoint
type Receiver struct {
	Server *httptest.Server

	mu          sync.Mutex
	status      int
	submissions []Submission
}

// NewReceiver starts a fake endpoint at /upload answering with status
func NewReceiver(t testing.TB, status int) *Receiver {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := &Receiver{status: status}
	router := gin.New()
	router.POST("/upload", r.handle)

	r.Server = httptest.NewServer(router)
	t.Cleanup(r.Server.Close)
	return r
}

// URL is the full upload address
func (r *Receiver) URL() string {
	return r.Server.URL + "/upload"
}

func (r *Receiver) SetStatus(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
}

func (r *Receiver) Submissions() []Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Submission, len(r.submissions))
	copy(out, r.submissions)
	return out
}

func (r *Receiver) handle(c *gin.Context) {
	sub := Submission{ContentType: c.GetHeader("Content-Type")}

	form, err := c.MultipartForm()
	if err != nil {
		c.String(http.StatusBadRequest, "Error parsing form: "+err.Error())
		return
	}
	sub.Email = c.PostForm("email_id")
	sub.Emails = form.Value["email_id"]

	for _, fh := range form.File["files"] {
		src, err := fh.Open()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		sub.Files = append(sub.Files, ReceivedFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	r.mu.Lock()
	r.submissions = append(r.submissions, sub)
	status := r.status
	r.mu.Unlock()

	c.String(status, http.StatusText(status))
}
