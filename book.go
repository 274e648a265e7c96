package cookbook

import (
	"fmt"
	"strings"
)

// placeholderContent stands in for a recipe whose conversion or
// extraction failed, keeping the document compilable.
const placeholderContent = `\textit{Recipe content could not be processed.}`

// renderHeader builds the document preamble and title page. The layout
// is fixed; language, font, index title, tagline and date come from
// the settings.
func renderHeader(s *BookSettings) string {
	var b strings.Builder

	b.WriteString(`\documentclass[11pt,a4paper,twoside]{book}
\usepackage{fontspec}
\usepackage{polyglossia}
\setdefaultlanguage{` + s.Language + `}
\setotherlanguage{` + s.OtherLanguage + `}
\setmainfont{` + s.MainFont + `}
\usepackage{textcomp}
\usepackage{microtype}
\usepackage{enumitem}
\usepackage{multicol}
\usepackage[space]{grffile}
\usepackage{graphicx}
\usepackage{xcolor}
\usepackage{titlesec}
\usepackage{geometry}
\usepackage{hyperref}`)

	if s.Index {
		b.WriteString(`
\usepackage{makeidx}
\usepackage{imakeidx}`)
	}

	b.WriteString(`
\usepackage{fancyhdr}
\usepackage{tocloft}

% Page geometry
\geometry{left=2.5cm,right=2.5cm,top=2.5cm,bottom=3cm,bindingoffset=0.5cm}

% Color definitions
\definecolor{ingredientcolor}{RGB}{204, 85, 0}
\definecolor{cookwarecolor}{RGB}{34, 139, 34}
\definecolor{timercolor}{RGB}{220, 20, 60}

% Custom commands
\newcommand{\ingredient}[1]{\textcolor{ingredientcolor}{\textbf{#1}}}
\newcommand{\cookware}[1]{\textcolor{cookwarecolor}{\textbf{#1}}}
\newcommand{\timer}[1]{\textcolor{timercolor}{\textbf{#1}}}
`)

	if s.Index {
		b.WriteString(`
% Index setup
\makeindex[columns=2, title=` + s.IndexTitle + `, intoc]`)
	}

	b.WriteString(`

% Page style
\pagestyle{fancy}
\fancyhf{}
\fancyhead[LE,RO]{\thepage}
\fancyhead[RE]{\textit{` + Escape(s.Title) + `}}
\fancyhead[LO]{\leftmark}
\renewcommand{\headrulewidth}{0.4pt}

% Section formatting - smaller for TOC entries
\titleformat{\section}[block]
  {\normalfont\large\bfseries}
  {}
  {0pt}
  {}

% Suppress section numbers
\setcounter{secnumdepth}{0}

\begin{document}

% Title page
\begin{titlepage}
\centering
\vspace*{5cm}
{\Huge\bfseries ` + Escape(s.Title) + `}\par`)

	if s.Author != "" {
		b.WriteString(`
\vspace{2cm}
{\Large ` + Escape(s.Author) + `}\par`)
	}

	b.WriteString(`
\vfill
\textit{` + Escape(s.Tagline) + `}\par
\vspace{1cm}
{\large ` + dateLine(s.Date) + `}
\end{titlepage}
`)

	if s.TOC {
		b.WriteString(`
% Table of contents
\tableofcontents
\clearpage
`)
	}

	return b.String()
}

// renderFooter closes the document, printing the index when enabled.
func renderFooter(s *BookSettings) string {
	var b strings.Builder
	if s.Index {
		b.WriteString(`
% Index
\printindex
`)
	}
	b.WriteString(`
\end{document}
`)
	return b.String()
}

// dateLine renders the title-page date: \today when unset, otherwise
// the configured literal, escaped.
func dateLine(date string) string {
	if date == "" {
		return `\today`
	}
	return Escape(date)
}

func renderChapterHeading(name string) string {
	return fmt.Sprintf("\n\\chapter{%s}\n\n", Escape(name))
}

// recipeSection carries everything needed to emit one recipe.
type recipeSection struct {
	name    string
	meta    Metadata
	image   string
	content string
}

// renderRecipe emits one recipe: index entries, metadata trace
// comments, a TOC anchor with a phantom section, the centered title,
// the optional image block and the converted body (or the placeholder
// when processing failed). The image path is written untouched since
// grffile handles spaces; escaping it would corrupt the path.
func renderRecipe(sec recipeSection, s *BookSettings) string {
	var b strings.Builder
	escapedName := Escape(sec.name)

	if s.Index {
		fmt.Fprintf(&b, "\\index{%s}\n", escapedName)
		for _, tag := range sec.meta.Tags() {
			fmt.Fprintf(&b, "\\index{%s!%s}\n", Escape(tag), escapedName)
		}
		if author, ok := sec.meta["author"]; ok {
			fmt.Fprintf(&b, "\\index{Authors!%s!%s}\n", Escape(author), escapedName)
		}
	}

	if len(sec.meta) > 0 {
		fmt.Fprintf(&b, "%% Recipe: %s\n", sec.name)
		for _, key := range sec.meta.Keys() {
			fmt.Fprintf(&b, "%% %s: %s\n", key, sec.meta[key])
		}
		b.WriteString("\n")
	}

	b.WriteString("\\phantomsection\n")
	fmt.Fprintf(&b, "\\addcontentsline{toc}{section}{%s}\n", escapedName)

	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "{\\Huge\\bfseries %s}\n", escapedName)
	b.WriteString("\\end{center}\n\\vspace{1cm}\n\n")

	if sec.image != "" {
		b.WriteString("\\begin{center}\n")
		fmt.Fprintf(&b, "\\includegraphics[width=0.8\\textwidth]{%s}\n", sec.image)
		b.WriteString("\\end{center}\n\\vspace{0.5cm}\n\n")
	}

	if sec.content != "" {
		b.WriteString(sec.content)
	} else {
		b.WriteString(placeholderContent)
	}
	b.WriteString("\n\n\\clearpage\n\n")

	return b.String()
}
