package isolate

import (
	seccomp "github.com/elastic/go-seccomp-bpf"
)

// policy denies clearly destructive administrative syscalls and allows
// everything else. It is a hardening layer for untrusted test programs,
// not a full sandbox.
var policy = seccomp.Policy{
	DefaultAction: seccomp.ActionAllow,
	Syscalls: []seccomp.SyscallGroup{
		{
			Action: seccomp.ActionErrno,
			Names: []string{
				"reboot",
				"mount",
				"umount2",
				"swapon",
				"swapoff",
				"init_module",
				"finit_module",
				"delete_module",
				"kexec_load",
				"sethostname",
				"setdomainname",
			},
		},
	},
}

// loadPolicy installs the policy with no_new_privs set so the filter
// survives the exec into the test program.
func loadPolicy() error {
	return seccomp.LoadFilter(seccomp.Filter{
		NoNewPrivs: true,
		Flag:       seccomp.FilterFlagTSync,
		Policy:     policy,
	})
}
