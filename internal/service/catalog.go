package service

import "github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"

// defaultForumCategories returns the fixed forum taxonomy seeded on first
// read of an empty catalog.
func defaultForumCategories() []*model.ForumCategory {
	return []*model.ForumCategory{
		{
			Name:        "Cyber Security",
			Slug:        "cyber-security",
			Description: "Discussions about cybersecurity topics, threats, and defense strategies",
			Icon:        "🛡️",
			Color:       "#dc2626",
			Order:       1,
			Subcategories: []model.SubCategory{
				{Name: "Network Security", Slug: "network-security", Description: "Firewalls, IDS/IPS, VPNs"},
				{Name: "Web Security", Slug: "web-security", Description: "OWASP, XSS, SQL Injection"},
				{Name: "Malware Analysis", Slug: "malware-analysis", Description: "Virus, trojan, ransomware analysis"},
				{Name: "Penetration Testing", Slug: "penetration-testing", Description: "Ethical hacking techniques"},
				{Name: "Cryptography", Slug: "cryptography", Description: "Encryption, hashing, PKI"},
				{Name: "Security Tools", Slug: "security-tools", Description: "Nmap, Burp Suite, Metasploit"},
			},
		},
		{
			Name:        "Programming",
			Slug:        "programming",
			Description: "Programming languages, frameworks, and development topics",
			Icon:        "💻",
			Color:       "#2563eb",
			Order:       2,
			Subcategories: []model.SubCategory{
				{Name: "Python", Slug: "python", Description: "Python programming and scripting"},
				{Name: "JavaScript", Slug: "javascript", Description: "JS, Node.js, React, Vue"},
				{Name: "C/C++", Slug: "c-cpp", Description: "Systems programming"},
				{Name: "Rust", Slug: "rust", Description: "Memory-safe systems programming"},
				{Name: "Go", Slug: "go", Description: "Go language and tools"},
				{Name: "Shell Scripting", Slug: "shell-scripting", Description: "Bash, PowerShell, automation"},
			},
		},
		{
			Name:        "Reverse Engineering",
			Slug:        "reverse-engineering",
			Description: "Binary analysis, disassembly, and reverse engineering techniques",
			Icon:        "🔍",
			Color:       "#7c3aed",
			Order:       3,
			Subcategories: []model.SubCategory{
				{Name: "Binary Analysis", Slug: "binary-analysis", Description: "ELF, PE, Mach-O analysis"},
				{Name: "Disassembly", Slug: "disassembly", Description: "IDA Pro, Ghidra, radare2"},
				{Name: "Debugging", Slug: "debugging", Description: "GDB, x64dbg, WinDbg"},
				{Name: "Exploit Development", Slug: "exploit-development", Description: "Buffer overflows, ROP chains"},
				{Name: "Game Hacking", Slug: "game-hacking", Description: "Game modification and analysis"},
			},
		},
		{
			Name:        "General Discussion",
			Slug:        "general",
			Description: "Off-topic discussions, introductions, and community chat",
			Icon:        "💬",
			Color:       "#059669",
			Order:       4,
			Subcategories: []model.SubCategory{
				{Name: "Introductions", Slug: "introductions", Description: "Introduce yourself to the community"},
				{Name: "Career & Jobs", Slug: "career-jobs", Description: "Career advice and job opportunities"},
				{Name: "News & Events", Slug: "news-events", Description: "Security news and events"},
				{Name: "Resources", Slug: "resources", Description: "Learning resources and tutorials"},
			},
		},
	}
}
