package components

// Inline SVG icons. Stroke-based, 24x24 viewBox, sized by CSS.
const (
	svgOpen  = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`
	svgClose = `</svg>`

	iconBolt     = svgOpen + `<path d="M21 16V8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16z"/><circle cx="12" cy="12" r="4"/>` + svgClose
	iconSearch   = svgOpen + `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>` + svgClose
	iconMenu     = svgOpen + `<line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="18" y2="18"/>` + svgClose
	iconX        = svgOpen + `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>` + svgClose
	iconArrow    = svgOpen + `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>` + svgClose
	iconCart     = svgOpen + `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"/>` + svgClose
	iconCheck    = svgOpen + `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>` + svgClose
	iconTerminal = svgOpen + `<polyline points="4 17 10 11 4 5"/><line x1="12" x2="20" y1="19" y2="19"/>` + svgClose
	iconCode     = svgOpen + `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>` + svgClose
	iconGlobe    = svgOpen + `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>` + svgClose
)
