package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const nextStep = "flutter pub get && dart run flutter_launcher_icons"

type console struct {
	out       io.Writer
	okStyle   lipgloss.Style
	doneStyle lipgloss.Style
	hintStyle lipgloss.Style
	errStyle  lipgloss.Style
}

func newConsole(w io.Writer) *console {
	r := lipgloss.NewRenderer(w)
	return &console{
		out:       w,
		okStyle:   r.NewStyle().Foreground(lipgloss.Color("42")),
		doneStyle: r.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
		hintStyle: r.NewStyle().Foreground(lipgloss.Color("245")),
		errStyle:  r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

func (c *console) Generated(name string) {
	fmt.Fprintln(c.out, c.okStyle.Render("✅ "+name+" generated"))
}

func (c *console) Done() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.doneStyle.Render("🎉 Icons generated successfully!"))
	fmt.Fprintln(c.out, c.hintStyle.Render("Now run: "+nextStep))
}

func (c *console) Error(err error) {
	fmt.Fprintln(c.out, c.errStyle.Render(fmt.Sprintf("Error: %v", err)))
}
