package html

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/forgeui/internal/render"
)

const runtimeBody = `function render() {
  document.querySelectorAll('[data-if]').forEach((el) => {
    const [key, value] = el.dataset.if.split(':');
    el.hidden = state[key] !== Number(value);
  });
}

document.addEventListener('click', (event) => {
  const setter = event.target.closest('[data-set]');
  if (setter) {
    const [key, value] = setter.dataset.set.split(':');
    state[key] = Number(value);
    render();
  }
  const toggler = event.target.closest('[data-toggle]');
  if (toggler) {
    const key = toggler.dataset.toggle;
    state[key] = state[key] === 1 ? 0 : 1;
    render();
  }
});

document.addEventListener('submit', (event) => {
  if (event.target.matches('[data-prevent]')) {
    event.preventDefault();
  }
});

render();
`

// runtime returns the script that drives data-set, data-toggle and data-if
// attributes from a single state object.
func runtime(state []render.StateVar) string {
	var b strings.Builder
	if len(state) == 0 {
		b.WriteString("const state = {};\n\n")
	} else {
		b.WriteString("const state = {\n")
		for _, v := range state {
			fmt.Fprintf(&b, "  %s: %d,\n", v.Name, v.Initial)
		}
		b.WriteString("};\n\n")
	}
	b.WriteString(runtimeBody)
	return b.String()
}
