// Package rendering provides functionality to render LaTeX resumes from parsed models.
package rendering

import "text/template"

// resumeTmpl is parsed once at init. The delimiters are changed because the
// default {{ }} pair collides with LaTeX brace groups.
var resumeTmpl = template.Must(template.New("resume").
	Delims("<<", ">>").
	Funcs(template.FuncMap{"escape": EscapeLaTeX}).
	Parse(resumeTemplate))

const resumeTemplate = `\documentclass[letterpaper,11pt]{article}

\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{marvosym}
\usepackage[usenames,dvipsnames]{color}
\usepackage{verbatim}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{fancyhdr}
\usepackage[english]{babel}
\usepackage{tabularx}
\input{glyphtounicode}

\pagestyle{fancy}
\fancyhf{}
\fancyfoot{}
\renewcommand{\headrulewidth}{0pt}
\renewcommand{\footrulewidth}{0pt}

\addtolength{\oddsidemargin}{-0.5in}
\addtolength{\evensidemargin}{-0.5in}
\addtolength{\textwidth}{1in}
\addtolength{\topmargin}{-.5in}
\addtolength{\textheight}{1.0in}

\urlstyle{same}

\raggedbottom
\raggedright
\setlength{\tabcolsep}{0in}

\titleformat{\section}{
  \vspace{-4pt}\scshape\raggedright\large
}{}{0em}{}[\color{black}\titlerule \vspace{-5pt}]

\pdfgentounicode=1

\newcommand{\resumeItem}[1]{
  \item\small{
    {#1 \vspace{-2pt}}
  }
}

\newcommand{\resumeSubheading}[4]{
  \vspace{-2pt}\item
    \begin{tabular*}{0.97\textwidth}[t]{l@{\extracolsep{\fill}}r}
      \textbf{#1} & #2 \\
      \textit{\small#3} & \textit{\small #4} \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeProjectHeading}[2]{
    \item
    \begin{tabular*}{0.97\textwidth}{l@{\extracolsep{\fill}}r}
      \small#1 & #2 \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeSubHeadingListStart}{\begin{itemize}[leftmargin=0.15in, label={}]}
\newcommand{\resumeSubHeadingListEnd}{\end{itemize}}
\newcommand{\resumeItemListStart}{\begin{itemize}}
\newcommand{\resumeItemListEnd}{\end{itemize}\vspace{-5pt}}

\begin{document}

\begin{center}
    \textbf{\Huge \scshape <<escape .Name>>} \\ \vspace{1pt}
    \small <<.ContactLine>>
\end{center}
<<if .Education>>
%-----------EDUCATION-----------
\section{Education}
  \resumeSubHeadingListStart
  <<- range .Education>>
    \resumeSubheading
      {<<escape .School>>}{<<escape .Dates>>}
      {<<escape .Degree>>}{<<escape .Location>>}
  <<- end>>
  \resumeSubHeadingListEnd
<<- end>>
<<if .Experience>>
%-----------EXPERIENCE-----------
\section{Experience}
  \resumeSubHeadingListStart
  <<- range .Experience>>
    \resumeSubheading
      {<<escape .Company>>}{<<escape .Dates>>}
      {<<escape .Role>>}{<<escape .Location>>}
    <<- if .Bullets>>
      \resumeItemListStart
      <<- range .Bullets>>
        \resumeItem{<<escape .>>}
      <<- end>>
      \resumeItemListEnd
    <<- end>>
  <<- end>>
  \resumeSubHeadingListEnd
<<- end>>
<<if .Projects>>
%-----------PROJECTS-----------
\section{Projects}
    \resumeSubHeadingListStart
    <<- range .Projects>>
      \resumeProjectHeading
          {\textbf{<<escape .Title>>}<<if .Stack>> $|$ \emph{<<escape .Stack>>}<<end>>}{<<escape .Dates>>}
      <<- if .Bullets>>
          \resumeItemListStart
          <<- range .Bullets>>
            \resumeItem{<<escape .>>}
          <<- end>>
          \resumeItemListEnd
      <<- end>>
    <<- end>>
    \resumeSubHeadingListEnd
<<- end>>
<<if .Skills>>
%-----------TECHNICAL SKILLS-----------
\section{Technical Skills}
 \begin{itemize}[leftmargin=0.15in, label={}]
    \small{\item{
    <<- range .Skills>>
     \textbf{<<escape .Label>>}{: <<escape .Values>>} \\
    <<- end>>
    }}
 \end{itemize}
<<- end>>

\end{document}
`
