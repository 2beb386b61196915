// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/service"
	"github.com/mfadhilr/contekan/models"
)

type mainScreen int

const (
	screenList mainScreen = iota
	screenDetail
	screenForm
)

const (
	statusTTL      = 2 * time.Second
	refreshRedraw  = 2 * time.Second
	listTitleWidth = 34
	listOwnerWidth = 18
	formInputWidth = 48
	bodyAreaWidth  = 64
	bodyAreaHeight = 10
	maxBodyPreview = 1200
)

// mainLoopModel is the Bubble Tea model for the signed-in part of the
// client: the snippet list, the detail view, the add/edit form and the
// deletion overlay. One model covers all screens so that list state
// survives navigation.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	screen mainScreen
	cursor int

	loading bool
	spin    spinner.Model

	searching   bool
	searchInput textinput.Model

	// Add/edit form. The staged values live in the editor; the widgets
	// here only collect keystrokes and are copied in on save.
	titleInput      textinput.Model
	descInput       textinput.Model
	attachPathInput textinput.Model
	bodyArea        textarea.Model
	formFocus       int
	formErr         string

	// Deletion overlay, driven entirely by DeleteFlow events.
	deleteActive bool
	deleteEvent  service.DeleteEvent

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	searchInput := textinput.New()
	searchInput.Placeholder = "cari..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	titleInput := textinput.New()
	titleInput.Placeholder = "judul"
	titleInput.CharLimit = 200
	titleInput.Width = formInputWidth

	descInput := textinput.New()
	descInput.Placeholder = "deskripsi (boleh kosong)"
	descInput.CharLimit = 500
	descInput.Width = formInputWidth

	attachPathInput := textinput.New()
	attachPathInput.Placeholder = "path file lampiran (boleh kosong)"
	attachPathInput.CharLimit = 500
	attachPathInput.Width = formInputWidth

	bodyArea := textarea.New()
	bodyArea.Placeholder = "isi contekan"
	bodyArea.SetWidth(bodyAreaWidth)
	bodyArea.SetHeight(bodyAreaHeight)
	bodyArea.CharLimit = 0

	return mainLoopModel{
		ctx:             ctx,
		services:        services,
		loading:         true,
		spin:            spin,
		searchInput:     searchInput,
		titleInput:      titleInput,
		descInput:       descInput,
		attachPathInput: attachPathInput,
		bodyArea:        bodyArea,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdLoad(), cmdRedrawTick())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		} else {
			m.errMsg = ""
			m.clampCursor()
		}
		return m, nil

	case snippetSavedMsg:
		if msg.err != nil {
			m.formErr = saveErrorMessage(msg.err)
			return m, nil
		}

		if _, known := m.services.List.Get(msg.snippet.ID); known {
			m.services.List.MergeUpdated(msg.snippet)
		} else {
			m.services.List.MergeInserted(msg.snippet)
		}
		m.services.List.Select(msg.snippet.ID)
		m.formErr = ""
		m.screen = screenDetail
		m.moveCursorTo(msg.snippet.ID)
		m.status = "Contekan disimpan"
		return m, cmdClearStatus()

	case deleteEventMsg:
		return m.onDeleteEvent(msg.event)

	case confirmDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case refreshViewMsg:
		// The background refresh job mutates the list controller out of
		// band; a periodic redraw keeps the rendered snapshot current.
		m.clampCursor()
		return m, cmdRedrawTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.deleteActive {
		return m.onDeleteOverlayKey(msg)
	}

	switch m.screen {
	case screenForm:
		return m.onFormKey(msg)
	case screenDetail:
		return m.onDetailKey(msg)
	default:
		return m.onListKey(msg)
	}
}

func (m mainLoopModel) onListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.services.List.Search("")
			m.clampCursor()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.services.List.Search(m.searchInput.Value())
		m.clampCursor()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.services.List.Visible())-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		visible := m.services.List.Visible()
		if m.cursor < len(visible) {
			m.services.List.Select(visible[m.cursor].ID)
			m.screen = screenDetail
		}
		return m, nil
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		if m.services.List.Filter() == service.FilterAll {
			m.services.List.SetOwnerFilter(service.FilterMine)
		} else {
			m.services.List.SetOwnerFilter(service.FilterAll)
		}
		m.clampCursor()
		return m, nil
	case "s":
		m.services.List.SetSortDirection(m.flippedSortDirection())
		return m, nil
	case "r":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoad())
	case "n":
		m.services.Editor.StartCreate()
		m.enterForm()
		return m, textinput.Blink
	case "e":
		return m.startEditUnderCursor()
	case "d":
		return m.requestDeleteUnderCursor()
	case "c":
		visible := m.services.List.Visible()
		if m.cursor < len(visible) {
			return m.copyBody(visible[m.cursor])
		}
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) onDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenList
		return m, nil
	case "e":
		return m.startEditUnderCursor()
	case "d":
		return m.requestDeleteUnderCursor()
	case "c":
		if selected, ok := m.services.List.CurrentSelection(); ok {
			return m.copyBody(selected)
		}
		return m, nil
	}
	return m, nil
}

func (m mainLoopModel) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveForm()
		return m, nil
	case "ctrl+s":
		return m, m.cmdSave()
	case "tab":
		m.formFocusNext(1)
		return m, nil
	case "shift+tab":
		m.formFocusNext(-1)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case 1:
		m.bodyArea, cmd = m.bodyArea.Update(msg)
	case 2:
		m.descInput, cmd = m.descInput.Update(msg)
	default:
		m.attachPathInput, cmd = m.attachPathInput.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) onDeleteOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.services.Delete.Cancel()
		return m, nil
	case "y", "enter":
		return m, m.cmdConfirmDelete()
	}
	return m, nil
}

func (m mainLoopModel) onDeleteEvent(event service.DeleteEvent) (tea.Model, tea.Cmd) {
	m.deleteEvent = event

	switch event.State {
	case service.FlowPending, service.FlowExecuting:
		m.deleteActive = true
		return m, nil
	default:
		m.deleteActive = false
		if event.Err != nil {
			m.errMsg = deleteErrorMessage(event.Err)
			return m, nil
		}
		if event.TargetID != "" {
			if m.screen == screenDetail {
				if _, ok := m.services.List.CurrentSelection(); !ok {
					m.screen = screenList
				}
			}
			m.clampCursor()
			m.status = "Contekan dihapus"
			return m, cmdClearStatus()
		}
		return m, nil
	}
}

func (m *mainLoopModel) enterForm() {
	editor := m.services.Editor
	m.titleInput.SetValue(editor.Title())
	m.bodyArea.SetValue(editor.Body())
	m.descInput.SetValue(editor.Description())
	m.attachPathInput.SetValue("")
	m.formErr = ""
	m.formFocus = 0
	m.titleInput.Focus()
	m.bodyArea.Blur()
	m.descInput.Blur()
	m.attachPathInput.Blur()
	m.screen = screenForm
}

func (m *mainLoopModel) leaveForm() {
	m.titleInput.Blur()
	m.bodyArea.Blur()
	m.descInput.Blur()
	m.attachPathInput.Blur()
	m.formErr = ""
	if _, editing := m.services.Editor.Editing(); editing {
		m.screen = screenDetail
	} else {
		m.screen = screenList
	}
}

func (m *mainLoopModel) formFocusNext(delta int) {
	const fields = 4
	switch m.formFocus {
	case 0:
		m.titleInput.Blur()
	case 1:
		m.bodyArea.Blur()
	case 2:
		m.descInput.Blur()
	default:
		m.attachPathInput.Blur()
	}

	m.formFocus = (m.formFocus + delta + fields) % fields

	switch m.formFocus {
	case 0:
		m.titleInput.Focus()
	case 1:
		m.bodyArea.Focus()
	case 2:
		m.descInput.Focus()
	default:
		m.attachPathInput.Focus()
	}
}

func (m mainLoopModel) startEditUnderCursor() (tea.Model, tea.Cmd) {
	snippet, ok := m.snippetUnderCursor()
	if !ok {
		return m, nil
	}

	if err := m.services.Editor.StartEdit(snippet); err != nil {
		if errors.Is(err, service.ErrAuthorization) {
			m.errMsg = "Hanya pemilik yang boleh mengubah contekan ini"
		} else {
			m.errMsg = humanizeServerUnavailableError(err)
		}
		return m, nil
	}

	m.errMsg = ""
	m.enterForm()
	return m, textinput.Blink
}

func (m mainLoopModel) requestDeleteUnderCursor() (tea.Model, tea.Cmd) {
	snippet, ok := m.snippetUnderCursor()
	if !ok {
		return m, nil
	}

	current, signedIn := m.services.Sessions.Current()
	if !signedIn || current.UserID != snippet.OwnerID {
		m.errMsg = "Hanya pemilik yang boleh menghapus contekan ini"
		return m, nil
	}

	ctx := m.ctx
	flow := m.services.Delete
	id := snippet.ID
	return m, func() tea.Msg {
		if err := flow.RequestDelete(ctx, id); err != nil {
			return confirmDoneMsg{err: err}
		}
		return nil
	}
}

func (m mainLoopModel) snippetUnderCursor() (models.Snippet, bool) {
	if m.screen == screenDetail {
		return m.services.List.CurrentSelection()
	}

	visible := m.services.List.Visible()
	if m.cursor >= len(visible) {
		return models.Snippet{}, false
	}
	return visible[m.cursor], true
}

func (m mainLoopModel) copyBody(snippet models.Snippet) (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(snippet.Body); err != nil {
		m.errMsg = "Tidak bisa menyalin ke clipboard"
		return m, nil
	}
	m.status = "Disalin!"
	return m, cmdClearStatus()
}

func (m *mainLoopModel) moveCursorTo(id string) {
	for i, snippet := range m.services.List.Visible() {
		if snippet.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *mainLoopModel) clampCursor() {
	visible := len(m.services.List.Visible())
	if visible == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
}

func (m mainLoopModel) flippedSortDirection() string {
	// Visible order is the only observable, so the toggle probes it: if
	// the first visible snippet is the oldest, the list is ascending.
	visible := m.services.List.Visible()
	if len(visible) < 2 {
		return config.SortDescending
	}
	if visible[0].CreatedAt.After(visible[len(visible)-1].CreatedAt) {
		return config.SortAscending
	}
	return config.SortDescending
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	list := m.services.List
	return func() tea.Msg {
		return listLoadedMsg{err: list.Load(ctx)}
	}
}

func (m mainLoopModel) cmdSave() tea.Cmd {
	editor := m.services.Editor
	editor.SetTitle(m.titleInput.Value())
	editor.SetBody(m.bodyArea.Value())
	editor.SetDescription(m.descInput.Value())

	ctx := m.ctx
	attachPath := strings.TrimSpace(m.attachPathInput.Value())

	return func() tea.Msg {
		if attachPath != "" {
			content, err := os.ReadFile(attachPath)
			if err != nil {
				return snippetSavedMsg{err: fmt.Errorf("baca file lampiran: %w", err)}
			}
			if err := editor.AttachFile(attachmentFileName(attachPath), content); err != nil {
				return snippetSavedMsg{err: err}
			}
		}

		snippet, err := editor.Submit(ctx)
		return snippetSavedMsg{snippet: snippet, err: err}
	}
}

func (m mainLoopModel) cmdConfirmDelete() tea.Cmd {
	flow := m.services.Delete
	return func() tea.Msg {
		return confirmDoneMsg{err: flow.Confirm()}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdRedrawTick() tea.Cmd {
	return tea.Tick(refreshRedraw, func(time.Time) tea.Msg {
		return refreshViewMsg{}
	})
}

func attachmentFileName(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func saveErrorMessage(err error) string {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return "Judul dan isi wajib diisi"
	}

	switch {
	case errors.Is(err, service.ErrAttachmentTooLarge):
		return "Lampiran terlalu besar (maksimal 1 MB)"
	case errors.Is(err, service.ErrAuthorization):
		return "Hanya pemilik yang boleh mengubah contekan ini"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func deleteErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrAuthorization):
		return "Hanya pemilik yang boleh menghapus contekan ini"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func (m mainLoopModel) View() string {
	if m.deleteActive {
		return m.viewDeleteOverlay()
	}

	switch m.screen {
	case screenForm:
		return m.viewForm()
	case screenDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.searching || m.services.List.Query() != "" {
		b.WriteString("Cari │ [")
		b.WriteString(m.searchInput.View())
		b.WriteString("]\n\n")
	}

	filterLabel := "semua"
	if m.services.List.Filter() == service.FilterMine {
		filterLabel = "punyaku"
	}
	b.WriteString(fmt.Sprintf("Filter: %s\n\n", filterLabel))

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" memuat contekan...\n")
	} else {
		visible := m.services.List.Visible()
		if len(visible) == 0 {
			b.WriteString("Belum ada contekan.\n")
		}
		for i, snippet := range visible {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			marker := " "
			if snippet.HasAttachment() {
				marker = "*"
			}
			b.WriteString(fmt.Sprintf("%s%-*s %s %-*s %s\n",
				cursor,
				listTitleWidth, fitText(snippet.Title, listTitleWidth),
				marker,
				listOwnerWidth, fitText(valueOrDash(snippet.OwnerDisplayName), listOwnerWidth),
				formatTimestamp(snippet.CreatedAt),
			))
		}
	}

	b.WriteString(m.statusLine())

	return renderPage("CONTEKAN",
		strings.TrimRight(b.String(), "\n"),
		"enter: buka │ n: baru │ e: ubah │ d: hapus │ c: salin │ /: cari │ f: filter │ s: urutkan │ r: muat ulang │ l: keluar akun │ q: keluar")
}

func (m mainLoopModel) viewDetail() string {
	selected, ok := m.services.List.CurrentSelection()
	if !ok {
		return renderPage("CONTEKAN", "Contekan tidak ditemukan.", "esc: kembali")
	}

	var b strings.Builder
	b.WriteString("Judul     │ " + valueOrDash(selected.Title) + "\n")
	b.WriteString("Pemilik   │ " + valueOrDash(selected.OwnerDisplayName) + "\n")
	b.WriteString("Dibuat    │ " + formatTimestamp(selected.CreatedAt) + "\n")
	b.WriteString("Deskripsi │ " + valueOrDash(selected.Description) + "\n")
	if selected.HasAttachment() {
		b.WriteString(fmt.Sprintf("Lampiran  │ %s (%s)\n",
			selected.Attachment.FileName, formatSize(selected.Attachment.Size)))
	} else {
		b.WriteString("Lampiran  │ -\n")
	}
	b.WriteString("\n")
	b.WriteString(fitText(selected.Body, maxBodyPreview))
	b.WriteString("\n")

	b.WriteString(m.statusLine())

	return renderPage("CONTEKAN │ "+fitText(selected.Title, 30),
		strings.TrimRight(b.String(), "\n"),
		"e: ubah │ d: hapus │ c: salin isi │ esc: kembali")
}

func (m mainLoopModel) viewForm() string {
	title := "CONTEKAN BARU"
	if _, editing := m.services.Editor.Editing(); editing {
		title = "UBAH CONTEKAN"
	}

	var b strings.Builder
	b.WriteString("Judul     │ [" + m.titleInput.View() + "]\n\n")
	b.WriteString("Isi:\n")
	b.WriteString(m.bodyArea.View())
	b.WriteString("\n\n")
	b.WriteString("Deskripsi │ [" + m.descInput.View() + "]\n")
	b.WriteString("Lampiran  │ [" + m.attachPathInput.View() + "]\n")

	if staged := m.services.Editor.Attachment(); staged != nil {
		b.WriteString(fmt.Sprintf("\nLampiran tersimpan: %s (%s)\n",
			staged.FileName, formatSize(staged.Size)))
	}

	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Gagal: " + m.formErr))
		b.WriteString("\n")
	}

	return renderPage(title,
		strings.TrimRight(b.String(), "\n"),
		"ctrl+s: simpan │ tab: kolom berikutnya │ esc: batal")
}

func (m mainLoopModel) viewDeleteOverlay() string {
	target, _ := m.services.List.Get(m.deleteEvent.TargetID)

	var b strings.Builder
	b.WriteString("Hapus contekan?\n\n")
	b.WriteString("  " + fitText(valueOrDash(target.Title), 40) + "\n\n")

	switch m.deleteEvent.State {
	case service.FlowExecuting:
		b.WriteString("Menghapus...\n")
	default:
		if m.deleteEvent.Remaining > 0 {
			b.WriteString(fmt.Sprintf("Terhapus otomatis dalam %d detik.\n\n", m.deleteEvent.Remaining))
		}
		b.WriteString(helpStyle.Render("y: hapus sekarang │ esc: batal"))
	}

	return renderPage("HAPUS", overlayBoxStyle.Render(b.String()), "")
}

func (m mainLoopModel) statusLine() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Gagal: "+m.errMsg) + "\n")
	}
	return b.String()
}
