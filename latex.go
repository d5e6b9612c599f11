package mdr

import "strings"

// mathSymbols maps common LaTeX commands to their unicode glyphs so
// math spans read naturally in a terminal. Unknown commands pass
// through untouched.
var mathSymbols = strings.NewReplacer(
	`\alpha`, "α",
	`\beta`, "β",
	`\gamma`, "γ",
	`\delta`, "δ",
	`\epsilon`, "ε",
	`\zeta`, "ζ",
	`\eta`, "η",
	`\theta`, "θ",
	`\lambda`, "λ",
	`\mu`, "μ",
	`\nu`, "ν",
	`\xi`, "ξ",
	`\pi`, "π",
	`\rho`, "ρ",
	`\sigma`, "σ",
	`\tau`, "τ",
	`\phi`, "φ",
	`\chi`, "χ",
	`\psi`, "ψ",
	`\omega`, "ω",
	`\Gamma`, "Γ",
	`\Delta`, "Δ",
	`\Theta`, "Θ",
	`\Lambda`, "Λ",
	`\Sigma`, "Σ",
	`\Phi`, "Φ",
	`\Psi`, "Ψ",
	`\Omega`, "Ω",
	`\infty`, "∞",
	`\sum`, "∑",
	`\prod`, "∏",
	`\int`, "∫",
	`\partial`, "∂",
	`\nabla`, "∇",
	`\sqrt`, "√",
	`\pm`, "±",
	`\mp`, "∓",
	`\times`, "×",
	`\div`, "÷",
	`\cdot`, "·",
	`\leq`, "≤",
	`\geq`, "≥",
	`\neq`, "≠",
	`\approx`, "≈",
	`\equiv`, "≡",
	`\propto`, "∝",
	`\in`, "∈",
	`\notin`, "∉",
	`\subset`, "⊂",
	`\supset`, "⊃",
	`\cup`, "∪",
	`\cap`, "∩",
	`\forall`, "∀",
	`\exists`, "∃",
	`\rightarrow`, "→",
	`\leftarrow`, "←",
	`\Rightarrow`, "⇒",
	`\Leftarrow`, "⇐",
	`\leftrightarrow`, "↔",
	`\emptyset`, "∅",
	`\angle`, "∠",
	`\perp`, "⊥",
)

// renderMath prettifies a LaTeX expression for terminal display.
func renderMath(expr string) string {
	return mathSymbols.Replace(strings.TrimSpace(expr))
}
