package script

// The bash script is a thin shim: candidate computation lives in the
// "cola-complete query" backend so the schema stays in one place.
const bashScript = `# bash completion for git-cola
# generated by cola-complete; do not edit by hand

_git_cola() {
    local cur candidates
    cur="${COMP_WORDS[COMP_CWORD]}"
    candidates=$(cola-complete query --cwd "$PWD" -- "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null | cut -f1)
    COMPREPLY=( $(compgen -W "$candidates" -- "$cur") )
}

complete -o default -F _git_cola git-cola
`

func renderBash() string {
	return bashScript
}
