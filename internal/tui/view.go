package tui

import (
	"fmt"
	"strings"
)

const maskedValue = "••••••••"

func (m browseModel) View() string {
	var title, data, hotKeys string

	if m.detail {
		title, data, hotKeys = m.viewDetail()
	} else {
		title, data, hotKeys = m.viewList()
	}

	if m.status != "" {
		data += "\n\n" + helpStyle.Render(m.status)
	}
	if m.errMsg != "" {
		data += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	page := layout(titleStyle.Render(title), data, hotKeys)
	if m.confirm {
		k, _ := m.current()
		page += "\n\n" + overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", k))
	}

	return appStyle.Render(page)
}

func (m browseModel) viewList() (title, data, hotKeys string) {
	title = "secure-storage  " + m.storage.KeyPrefix()
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.keys) == 0:
		b.WriteString("Loading...")
	case len(m.keys) == 0:
		b.WriteString("No keys")
	default:
		for i, k := range m.keys {
			line := "  " + truncate(k, keyMaxWidth)
			if i == m.idx {
				line = selectedStyle.Render("> " + truncate(k, keyMaxWidth))
			}
			b.WriteString(line + "\n")
		}
	}

	return title, strings.TrimRight(b.String(), "\n"), "enter open  d delete  r reload  q quit"
}

func (m browseModel) viewDetail() (title, data, hotKeys string) {
	k, _ := m.current()

	value := deref(m.value)
	if m.value != nil && !m.reveal {
		value = maskedValue
	}

	data = fmt.Sprintf("Key:    %s\nValue:  %s", k, value)
	return k, data, "space reveal  c copy  d delete  esc back"
}
