package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pdf-upload-form/form"
	"pdf-upload-form/picker"
	"pdf-upload-form/utils"
)

const (
	actionAdd = iota
	actionRemove
	actionEmail
	actionUpload
	actionQuit
)

// Session runs the upload form as a sequence of prompts
type Session struct {
	ctrl     *form.Controller
	uploader form.Uploader
	driver   PromptDriver
	out      io.Writer
	endpoint string
	log      *logrus.Logger
}

func NewSession(ctrl *form.Controller, uploader form.Uploader, driver PromptDriver, out io.Writer, endpoint string, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		ctrl:     ctrl,
		uploader: uploader,
		driver:   driver,
		out:      out,
		endpoint: endpoint,
		log:      log,
	}
}

// Run shows the menu until the user quits. initialPaths are selected first.
// Every preview handle is released on return.
func (s *Session) Run(ctx context.Context, initialPaths []string) error {
	defer s.ctrl.Close()

	PrintBanner(s.out, s.endpoint)

	if err := s.addPaths(ctx, initialPaths); err != nil {
		return s.finish(err)
	}

	for {
		PrintFormState(s.out, s.ctrl)

		options := []string{
			"Add PDF files",
			"Remove a file",
			"Set email",
			fmt.Sprintf("Upload %d PDF(s)", s.ctrl.Count()),
			"Quit",
		}
		choice, err := s.driver.Select(ctx, SelectConfig{Message: "What next?", Options: options})
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case actionAdd:
			err = s.promptAdd(ctx)
		case actionRemove:
			err = s.promptRemove(ctx)
		case actionEmail:
			err = s.promptEmail(ctx)
		case actionUpload:
			err = s.upload(ctx)
		case actionQuit:
			return nil
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish turns a user interrupt into a clean exit
func (s *Session) finish(err error) error {
	if errors.Is(err, ErrAborted) {
		s.log.Info("plain session aborted")
		return nil
	}
	return err
}

func (s *Session) promptAdd(ctx context.Context) error {
	input, err := s.driver.Input(ctx, InputConfig{
		Message: "PDF paths or globs",
		Help:    "Separate several paths with commas, e.g. invoices/*.pdf, report.pdf",
	})
	if err != nil {
		return err
	}
	return s.addPaths(ctx, picker.Expand(utils.ParseCommaSeparatedList(input)))
}

func (s *Session) addPaths(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	files, errs := picker.OpenAll(paths)
	res := s.ctrl.SelectFiles(files)

	var lines []string
	if notice := res.Notice(); notice != "" {
		lines = append(lines, notice)
	}
	for _, err := range errs {
		s.log.WithError(err).Warn("could not open selected path")
		lines = append(lines, err.Error())
	}
	if len(lines) > 0 {
		return s.notice(ctx, strings.Join(lines, "\n"))
	}
	return nil
}

func (s *Session) promptRemove(ctx context.Context) error {
	files := s.ctrl.Files()
	if len(files) == 0 {
		return s.driver.Info(ctx, dimStyle.Render("No files selected."))
	}

	options := make([]string, 0, len(files)+1)
	for _, f := range files {
		options = append(options, fmt.Sprintf("%s (%s)", f.Name, utils.FormatKB(f.Size)))
	}
	options = append(options, "Cancel")

	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Remove which file?", Options: options})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(files) {
		return nil
	}
	return s.ctrl.RemoveFile(idx)
}

func (s *Session) promptEmail(ctx context.Context) error {
	email, err := s.driver.Input(ctx, InputConfig{
		Message: "Email",
		Default: s.ctrl.Email(),
	})
	if err != nil {
		return err
	}
	s.ctrl.SetEmail(email)
	return nil
}

func (s *Session) upload(ctx context.Context) error {
	start := time.Now()
	err := s.ctrl.Submit(ctx, s.uploader)
	if errors.Is(err, form.ErrMissingInput) {
		return s.notice(ctx, err.Error())
	}
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, fmt.Sprintf("%s %s", StatusLine(s.ctrl.Status()), dimStyle.Render("("+utils.FormatDuration(time.Since(start))+")")))
}

// notice blocks until the user acknowledges msg
func (s *Session) notice(ctx context.Context, msg string) error {
	if err := s.driver.Info(ctx, warningStyle.Render(msg)); err != nil {
		return err
	}
	_, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Continue?", Default: true})
	return err
}
